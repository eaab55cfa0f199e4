// Package router wires the chi router: middleware stack plus the /api
// route tree.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"mindtoeye/internal/handlers"
	"mindtoeye/internal/middleware"
)

// New builds the HTTP handler tree. The API is consumed by a separately
// hosted frontend, so CORS is open in development and restricted by the
// deployment in front of us otherwise.
func New(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)
			r.Get("/{projectID}", h.GetProject)
			r.Delete("/{projectID}", h.DeleteProject)
			r.Get("/{projectID}/concepts", h.ListConcepts)
			r.Post("/{projectID}/concepts", h.CreateConcept)
		})

		r.Route("/concepts", func(r chi.Router) {
			r.Get("/{conceptID}", h.GetConcept)
			r.Delete("/{conceptID}", h.DeleteConcept)
			r.Patch("/{conceptID}/set-active", h.SetActiveConcept)
		})

		r.Post("/generate-concept", h.GenerateConcept)
		r.Post("/generate-logo", h.GenerateLogo)
		r.Post("/regenerate-element", h.RegenerateElement)
	})

	return r
}
