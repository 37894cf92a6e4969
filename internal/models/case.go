package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/maaidasong-coder/geointel/internal/analysis"
	"github.com/maaidasong-coder/geointel/internal/exifgps"
	"github.com/maaidasong-coder/geointel/internal/search"
)

// Case is one persisted intelligence record produced from a single uploaded
// image. Every field is always populated: real data where the upstream
// services delivered, explicit placeholders or error markers where they did
// not. A case is written once and never mutated afterward.
type Case struct {
	CaseID          string                  `json:"case_id"`
	CreatedAt       time.Time               `json:"created_at"`
	Notes           string                  `json:"notes"`
	Filename        string                  `json:"filename,omitempty"`
	Embedding       json.RawMessage         `json:"embedding"`
	SceneInferences json.RawMessage         `json:"scene_inferences"`
	OCRText         string                  `json:"ocr_text"`
	FaceData        json.RawMessage         `json:"face_data"`
	FaceAttributes  analysis.FaceAttributes `json:"face_attributes"`
	Geolocation     exifgps.Location        `json:"geolocation"`
	GeoGuesses      []string                `json:"geo_guesses"`
	Queries         []string                `json:"queries"`
	SearchProvider  string                  `json:"search_provider"`
	SearchResults   []search.QueryResult    `json:"search_results"`
	OSINT           []search.Hit            `json:"osint"`
	AIInsights      string                  `json:"ai_insights"`
}

// NewCase allocates the identifier and timestamp for a freshly assembled
// case.
func NewCase(notes string) *Case {
	return &Case{
		CaseID:    uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Notes:     notes,
	}
}

// CaseSummary is the listing view of a case.
type CaseSummary struct {
	CaseID     string    `json:"case_id"`
	CreatedAt  time.Time `json:"created_at"`
	Notes      string    `json:"notes"`
	AIInsights string    `json:"ai_insights"`
}

func (c *Case) Summary() CaseSummary {
	return CaseSummary{
		CaseID:     c.CaseID,
		CreatedAt:  c.CreatedAt,
		Notes:      c.Notes,
		AIInsights: c.AIInsights,
	}
}

// FlattenHits collects every hit across all query results into the flat
// OSINT list, preserving query then rank order.
func FlattenHits(results []search.QueryResult) []search.Hit {
	hits := []search.Hit{}
	for _, r := range results {
		hits = append(hits, r.Hits...)
	}
	return hits
}
