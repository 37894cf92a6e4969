package intel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maaidasong-coder/geointel/internal/database"
	"github.com/maaidasong-coder/geointel/internal/inference"
	"github.com/maaidasong-coder/geointel/internal/models"
	"github.com/maaidasong-coder/geointel/internal/search"
)

// failingStore rejects every insert but still answers reads.
type failingStore struct{}

func (failingStore) Insert(ctx context.Context, c *models.Case) error {
	return errors.New("disk full")
}

func (failingStore) GetByID(ctx context.Context, id string) (*models.Case, error) {
	return nil, database.ErrNotFound
}

func (failingStore) ListRecent(ctx context.Context, limit int) ([]models.CaseSummary, error) {
	return nil, nil
}

func newOfflineService(store database.CaseStore) *Service {
	// No inference token and no search provider: every upstream degrades.
	return NewService(
		inference.NewClient(inference.Config{}),
		search.NewAggregator(nil),
		store,
		nil,
		Config{},
	)
}

func TestAnalyzeImageDegradedPipeline(t *testing.T) {
	store := database.NewMemoryStore()
	service := newOfflineService(store)

	c := service.AnalyzeImage(context.Background(), []byte("not an image"), "", "  harbour photo  ")

	if c.CaseID == "" {
		t.Fatal("expected a case ID")
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if c.Notes != "harbour photo" {
		t.Errorf("expected trimmed notes, got %q", c.Notes)
	}
	if c.Geolocation.HasData {
		t.Errorf("expected no GPS data, got %+v", c.Geolocation)
	}

	// Inference fields hold the error marker, not null.
	for name, data := range map[string]string{
		"embedding":        string(c.Embedding),
		"scene_inferences": string(c.SceneInferences),
		"face_data":        string(c.FaceData),
	} {
		if !strings.Contains(data, `"error"`) {
			t.Errorf("expected error marker in %s, got %s", name, data)
		}
	}

	if c.OCRText != "N/A" {
		t.Errorf("expected OCR placeholder, got %q", c.OCRText)
	}
	if !c.FaceAttributes.Empty() {
		t.Errorf("expected empty face attributes, got %+v", c.FaceAttributes)
	}

	// Notes still drive query synthesis.
	if len(c.Queries) == 0 || c.Queries[0] != "harbour photo" {
		t.Errorf("expected notes-derived queries, got %v", c.Queries)
	}
	if len(c.GeoGuesses) != 1 || !strings.Contains(c.GeoGuesses[0], "No explicit geo hints") {
		t.Errorf("expected fallback geo guess, got %v", c.GeoGuesses)
	}

	if c.SearchProvider != "none" {
		t.Errorf("expected provider none, got %q", c.SearchProvider)
	}
	if c.SearchResults == nil || len(c.SearchResults) != 0 {
		t.Errorf("expected empty search results, got %+v", c.SearchResults)
	}
	if c.OSINT == nil || len(c.OSINT) != 0 {
		t.Errorf("expected empty osint list, got %+v", c.OSINT)
	}
	if c.AIInsights != "No AI insights available." {
		t.Errorf("unexpected insights: %q", c.AIInsights)
	}

	// And the case was persisted.
	stored, err := store.GetByID(context.Background(), c.CaseID)
	if err != nil {
		t.Fatalf("expected case in store: %v", err)
	}
	if stored.CaseID != c.CaseID {
		t.Errorf("stored case mismatch: %q vs %q", stored.CaseID, c.CaseID)
	}
}

func TestAnalyzeImageEmptyNotesFallsBack(t *testing.T) {
	service := newOfflineService(database.NewMemoryStore())

	c := service.AnalyzeImage(context.Background(), []byte("not an image"), "", "   ")

	if c.Notes != "" {
		t.Errorf("expected empty notes, got %q", c.Notes)
	}
	if len(c.Queries) != 2 {
		t.Fatalf("expected the fallback query pair, got %v", c.Queries)
	}
}

func TestAnalyzeImageReturnsCaseWhenPersistFails(t *testing.T) {
	service := newOfflineService(failingStore{})

	c := service.AnalyzeImage(context.Background(), []byte("not an image"), "", "notes")

	if c == nil {
		t.Fatal("expected a case despite the failed insert")
	}
	if c.CaseID == "" || c.AIInsights == "" {
		t.Errorf("expected a fully assembled case, got %+v", c)
	}
}

func TestAnalyzeImageWithInferenceResponses(t *testing.T) {
	scene := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"beach","score":0.9},{"label":"coast","score":0.05}]`))
	}))
	defer scene.Close()

	ocr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"Welcome to Springfield"`))
	}))
	defer ocr.Close()

	face := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"age":34,"gender":"male"}]`))
	}))
	defer face.Close()

	client := inference.NewClient(inference.Config{
		Token:    "test-token",
		SceneURL: scene.URL,
		OCRURL:   ocr.URL,
		FaceURL:  face.URL,
	})

	store := database.NewMemoryStore()
	service := NewService(client, search.NewAggregator(nil), store, nil, Config{})

	c := service.AnalyzeImage(context.Background(), []byte("fake image"), "", "")

	if c.OCRText != "Welcome to Springfield" {
		t.Errorf("expected normalized OCR text, got %q", c.OCRText)
	}
	if string(c.SceneInferences) != `[{"label":"beach","score":0.9},{"label":"coast","score":0.05}]` {
		t.Errorf("unexpected scene inferences: %s", c.SceneInferences)
	}
	if c.FaceAttributes.Age != "34" || c.FaceAttributes.Gender != "male" || c.FaceAttributes.Ethnicity != "unknown" {
		t.Errorf("unexpected face attributes: %+v", c.FaceAttributes)
	}

	// Embedding endpoint was never configured, so its field carries the marker.
	if !strings.Contains(string(c.Embedding), `"error"`) {
		t.Errorf("expected error marker in embedding, got %s", c.Embedding)
	}

	wantQueries := []string{
		"Welcome to Springfield",
		"beach",
		"coast",
		"Person detected, age ~34, gender ~male, ethnicity ~unknown",
	}
	if len(c.Queries) != len(wantQueries) {
		t.Fatalf("expected queries %v, got %v", wantQueries, c.Queries)
	}
	for i, want := range wantQueries {
		if c.Queries[i] != want {
			t.Errorf("query %d: expected %q, got %q", i, want, c.Queries[i])
		}
	}

	wantGuesses := []string{
		"Possible location related to: beach",
		"Possible location related to: coast",
		"Text hint: Welcome to Springfield",
		"Demographic hint: age:34, gender:male, ethnicity:unknown",
	}
	if len(c.GeoGuesses) != len(wantGuesses) {
		t.Fatalf("expected geo guesses %v, got %v", wantGuesses, c.GeoGuesses)
	}
	for i, want := range wantGuesses {
		if c.GeoGuesses[i] != want {
			t.Errorf("geo guess %d: expected %q, got %q", i, want, c.GeoGuesses[i])
		}
	}

	wantInsights := "Scene: beach OCR text: Welcome to Springfield... Face attributes: age: 34, gender: male, ethnicity: unknown"
	if c.AIInsights != wantInsights {
		t.Errorf("expected insights %q, got %q", wantInsights, c.AIInsights)
	}
}
