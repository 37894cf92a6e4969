package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maaidasong-coder/geointel/internal/database"
	"github.com/maaidasong-coder/geointel/internal/intel"
)

const defaultListLimit = 10

type App struct {
	Intel         *intel.Service
	Store         database.CaseStore
	MaxUploadSize int64
}

func (app *App) HomeHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "GeoIntel backend is live"})
}

func (app *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AnalyzeHandler accepts a multipart image upload with optional notes and
// responds with the full assembled case. A missing file is the only input
// rejected before pipeline work; every upstream failure after that point is
// annotated inside an otherwise successful response.
func (app *App) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	notes := r.FormValue("notes")

	c := app.Intel.AnalyzeImage(r.Context(), image, header.Filename, notes)
	respondJSON(w, http.StatusOK, c)
}

func (app *App) GetCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "id")
	if caseID == "" {
		respondError(w, http.StatusNotFound, "Case not found")
		return
	}

	c, err := app.Store.GetByID(r.Context(), caseID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Case not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load case")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (app *App) ListCasesHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	summaries, err := app.Store.ListRecent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list cases")
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
