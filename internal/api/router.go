package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", app.HomeHandler)
	r.Get("/health", app.HealthHandler)

	r.Post("/analyze", app.AnalyzeHandler)
	r.Get("/cases", app.ListCasesHandler)
	r.Get("/cases/{id}", app.GetCaseHandler)

	return r
}
