package intel

import (
	"context"
	"log"
	"strings"

	"github.com/maaidasong-coder/geointel/internal/analysis"
	"github.com/maaidasong-coder/geointel/internal/database"
	"github.com/maaidasong-coder/geointel/internal/exifgps"
	"github.com/maaidasong-coder/geointel/internal/inference"
	"github.com/maaidasong-coder/geointel/internal/models"
	"github.com/maaidasong-coder/geointel/internal/search"
	"github.com/maaidasong-coder/geointel/internal/storage"
)

// Service runs the full case-synthesis pipeline for one uploaded image:
// GPS ingestion, the four inference calls, normalization, query and geo
// guess synthesis, web search, insight synthesis, then assembly and
// persistence of one complete Case.
type Service struct {
	inference *inference.Client
	search    *search.Aggregator
	store     database.CaseStore
	storage   storage.Storage
	queryCap  int
}

type Config struct {
	QueryCap int
}

func NewService(inferenceClient *inference.Client, aggregator *search.Aggregator, store database.CaseStore, files storage.Storage, config Config) *Service {
	if config.QueryCap <= 0 {
		config.QueryCap = analysis.DefaultQueryCap
	}
	return &Service{
		inference: inferenceClient,
		search:    aggregator,
		store:     store,
		storage:   files,
		queryCap:  config.QueryCap,
	}
}

// AnalyzeImage produces and persists one Case. The pipeline is total: every
// upstream failure is captured as an error marker or placeholder inside the
// returned Case, never as a partial record. A failed persist is logged and
// the computed case is still returned to the caller.
func (s *Service) AnalyzeImage(ctx context.Context, image []byte, filename, notes string) *models.Case {
	c := models.NewCase(strings.TrimSpace(notes))

	location := exifgps.Extract(image)

	embedding := s.inference.Embedding(ctx, image)
	scene := s.inference.Scene(ctx, image)
	ocr := s.inference.OCR(ctx, image)
	face := s.inference.Face(ctx, image)

	faceAttrs := analysis.ExtractFaceAttributes(face)
	ocrText := analysis.NormalizeOCR(ocr)
	sceneLabels := analysis.DecodeSceneLabels(scene)

	queries := analysis.BuildQueries(ocrText, sceneLabels, c.Notes, faceAttrs, s.queryCap)
	geoGuesses := analysis.GeoGuesses(sceneLabels, ocrText, faceAttrs)
	provider, searchResults := s.search.Run(ctx, queries)
	insights := analysis.Insights(ocrText, sceneLabels, faceAttrs, searchResults)

	if s.storage != nil && filename != "" {
		stored, err := s.storage.SaveBytes(image, filename)
		if err != nil {
			log.Printf("[PIPE] Failed to retain uploaded image: %v", err)
		} else {
			c.Filename = stored
		}
	}

	c.Geolocation = location
	c.Embedding = embedding.JSON()
	c.SceneInferences = scene.JSON()
	c.OCRText = ocrText
	c.FaceData = face.JSON()
	c.FaceAttributes = faceAttrs
	c.GeoGuesses = geoGuesses
	c.Queries = queries
	c.SearchProvider = provider
	c.SearchResults = searchResults
	c.OSINT = models.FlattenHits(searchResults)
	c.AIInsights = insights

	if err := s.store.Insert(ctx, c); err != nil {
		log.Printf("[PIPE] Failed to persist case %s: %v", c.CaseID, err)
	}

	return c
}
