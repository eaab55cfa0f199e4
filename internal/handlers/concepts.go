package handlers

import (
	"net/http"
)

// GetConcept returns one concept, consulting the cache first.
func (h *Handlers) GetConcept(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "conceptID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid concept id")
		return
	}

	if c, ok := h.Cache.Get(r.Context(), id); ok {
		writeJSON(w, http.StatusOK, c)
		return
	}

	concept, err := h.Store.GetConcept(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "brand concept not found")
		return
	}
	h.Cache.Set(r.Context(), concept)
	writeJSON(w, http.StatusOK, concept)
}

// DeleteConcept deletes a concept.
func (h *Handlers) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "conceptID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid concept id")
		return
	}

	if err := h.Store.DeleteConcept(id); err != nil {
		writeError(w, http.StatusNotFound, "brand concept not found")
		return
	}
	h.Cache.Invalidate(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetActiveConcept marks a concept active, deactivating its siblings.
func (h *Handlers) SetActiveConcept(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "conceptID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid concept id")
		return
	}

	concept, err := h.Store.GetConcept(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "brand concept not found")
		return
	}

	updated, err := h.Store.SetActiveConcept(id, concept.ProjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Sibling activation state changed too, so drop them all.
	for _, sibling := range h.Store.ListConcepts(concept.ProjectID) {
		h.Cache.Invalidate(r.Context(), sibling.ID)
	}
	writeJSON(w, http.StatusOK, updated)
}
