// Package handlers implements the HTTP API surface: project and concept
// CRUD plus the generation endpoints that drive the brand orchestrator.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mindtoeye/internal/ai"
	"mindtoeye/internal/brand"
	"mindtoeye/internal/cache"
	"mindtoeye/internal/store"
)

// Handlers holds the wired collaborators every endpoint needs.
type Handlers struct {
	Store    *store.MemStore
	Gen      *brand.Generator
	Registry *ai.Registry
	Images   ai.ImageProvider // nil when no image provider is configured
	Cache    *cache.ConceptCache
	Log      *slog.Logger
}

// New creates the handler set.
func New(st *store.MemStore, gen *brand.Generator, reg *ai.Registry, images ai.ImageProvider, cc *cache.ConceptCache, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		Store:    st,
		Gen:      gen,
		Registry: reg,
		Images:   images,
		Cache:    cc,
		Log:      log,
	}
}

// Health reports service status and which generation providers are
// configured.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]bool{
		"anthropic": h.Registry != nil && h.Registry.HasProvider("anthropic"),
		"openai":    h.Registry != nil && h.Registry.HasProvider("openai"),
		"replicate": h.Images != nil,
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"services": services,
	})
}

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeBrandError maps a generation failure to an HTTP status: caller
// mistakes are 400, provider and model-output failures are 502.
func writeBrandError(w http.ResponseWriter, err error) {
	switch brand.KindOf(err) {
	case brand.KindValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case brand.KindUpstream, brand.KindParse, brand.KindShape:
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// notFound reports whether err is the store's missing-entity error.
func notFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
