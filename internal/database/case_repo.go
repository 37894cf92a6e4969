package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maaidasong-coder/geointel/internal/models"
)

// ErrNotFound is returned when no case matches the requested identifier.
var ErrNotFound = errors.New("case not found")

// CaseStore persists assembled cases. Two implementations exist: the
// relational CaseRepository and the ephemeral MemoryStore used when no
// database is configured.
type CaseStore interface {
	Insert(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id string) (*models.Case, error)
	ListRecent(ctx context.Context, limit int) ([]models.CaseSummary, error)
}

// CaseRepository stores cases one row each, with structured fields
// serialized as JSON columns.
type CaseRepository struct {
	db *DB
}

func NewCaseRepository(db *DB) *CaseRepository {
	return &CaseRepository{db: db}
}

type caseColumns struct {
	faceAttributes string
	geolocation    string
	geoGuesses     string
	queries        string
	searchResults  string
	osint          string
}

func encodeCaseColumns(c *models.Case) (caseColumns, error) {
	var cols caseColumns
	fields := []struct {
		name string
		val  interface{}
		dst  *string
	}{
		{"face_attributes", c.FaceAttributes, &cols.faceAttributes},
		{"geolocation", c.Geolocation, &cols.geolocation},
		{"geo_guesses", c.GeoGuesses, &cols.geoGuesses},
		{"queries", c.Queries, &cols.queries},
		{"search_results", c.SearchResults, &cols.searchResults},
		{"osint", c.OSINT, &cols.osint},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.val)
		if err != nil {
			return cols, fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return cols, nil
}

func (r *CaseRepository) Insert(ctx context.Context, c *models.Case) error {
	cols, err := encodeCaseColumns(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cases (
			case_id, created_at, notes, filename, embedding, scene_inferences,
			ocr_text, face_data, face_attributes, geolocation, geo_guesses,
			queries, search_provider, search_results, osint, ai_insights
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if r.db.dbType != "postgres" {
		query = `
		INSERT INTO cases (
			case_id, created_at, notes, filename, embedding, scene_inferences,
			ocr_text, face_data, face_attributes, geolocation, geo_guesses,
			queries, search_provider, search_results, osint, ai_insights
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	}

	_, err = r.db.conn.ExecContext(ctx, query,
		c.CaseID,
		c.CreatedAt,
		c.Notes,
		c.Filename,
		string(c.Embedding),
		string(c.SceneInferences),
		c.OCRText,
		string(c.FaceData),
		cols.faceAttributes,
		cols.geolocation,
		cols.geoGuesses,
		cols.queries,
		c.SearchProvider,
		cols.searchResults,
		cols.osint,
		c.AIInsights,
	)
	if err != nil {
		return fmt.Errorf("failed to insert case: %w", err)
	}
	return nil
}

func (r *CaseRepository) GetByID(ctx context.Context, id string) (*models.Case, error) {
	query := `
		SELECT case_id, created_at, notes, filename, embedding, scene_inferences,
			   ocr_text, face_data, face_attributes, geolocation, geo_guesses,
			   queries, search_provider, search_results, osint, ai_insights
		FROM cases
		WHERE case_id = $1`

	c := &models.Case{}
	var embedding, sceneInferences, faceData string
	var faceAttributes, geolocation, geoGuesses, queries, searchResults, osint string

	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&c.CaseID,
		&c.CreatedAt,
		&c.Notes,
		&c.Filename,
		&embedding,
		&sceneInferences,
		&c.OCRText,
		&faceData,
		&faceAttributes,
		&geolocation,
		&geoGuesses,
		&queries,
		&c.SearchProvider,
		&searchResults,
		&osint,
		&c.AIInsights,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	c.Embedding = json.RawMessage(embedding)
	c.SceneInferences = json.RawMessage(sceneInferences)
	c.FaceData = json.RawMessage(faceData)

	decoded := []struct {
		name string
		src  string
		dst  interface{}
	}{
		{"face_attributes", faceAttributes, &c.FaceAttributes},
		{"geolocation", geolocation, &c.Geolocation},
		{"geo_guesses", geoGuesses, &c.GeoGuesses},
		{"queries", queries, &c.Queries},
		{"search_results", searchResults, &c.SearchResults},
		{"osint", osint, &c.OSINT},
	}
	for _, f := range decoded {
		if f.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.src), f.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", f.name, err)
		}
	}

	return c, nil
}

func (r *CaseRepository) ListRecent(ctx context.Context, limit int) ([]models.CaseSummary, error) {
	query := `
		SELECT case_id, created_at, notes, ai_insights
		FROM cases
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	summaries := []models.CaseSummary{}
	for rows.Next() {
		var s models.CaseSummary
		if err := rows.Scan(&s.CaseID, &s.CreatedAt, &s.Notes, &s.AIInsights); err != nil {
			return nil, fmt.Errorf("failed to scan case summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summaries, nil
}
