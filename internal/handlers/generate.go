package handlers

import (
	"encoding/json"
	"net/http"

	"mindtoeye/internal/brand"
	"mindtoeye/internal/models"
)

// GenerateConcept runs full brand-concept generation. With ?stream=true the
// response is NDJSON progress events ending in the generated output; without
// it the completed BrandOutput is returned as one JSON body.
func (h *Handlers) GenerateConcept(w http.ResponseWriter, r *http.Request) {
	var in models.BrandInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateBrandInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if r.URL.Query().Get("stream") == "true" {
		h.generateConceptStream(w, r, in)
		return
	}

	out, err := h.Gen.GenerateConcept(r.Context(), in)
	if err != nil {
		writeBrandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// generateConceptStream emits coarse progress events as NDJSON while the
// generation runs. A generation failure becomes a terminal error event; the
// HTTP status is already committed by then.
func (h *Handlers) generateConceptStream(w http.ResponseWriter, r *http.Request, in models.BrandInput) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	emit := func(event map[string]any) {
		json.NewEncoder(w).Encode(event)
		if flusher != nil {
			flusher.Flush()
		}
	}

	emit(map[string]any{"progress": 0.1, "status": "Starting generation"})
	emit(map[string]any{"progress": 0.3, "status": "Analyzing brand information"})

	out, err := h.Gen.GenerateConcept(r.Context(), in)
	if err != nil {
		h.Log.Error("streamed generation failed", "brand", in.BrandName, "error", err)
		emit(map[string]any{"error": err.Error()})
		return
	}

	emit(map[string]any{"progress": 0.7, "status": "Creating logo variations"})
	emit(map[string]any{"progress": 1.0, "status": "Complete", "data": out})
}

type generateLogoRequest struct {
	BrandName   string              `json:"brandName"`
	Industry    string              `json:"industry"`
	Description string              `json:"description"`
	Values      []models.BrandValue `json:"values"`
	DesignStyle models.DesignStyle  `json:"designStyle"`
	Colors      []string            `json:"colors"`
}

// GenerateLogo synthesizes a standalone logo set from brand facts and an
// optional list of hex colors.
func (h *Handlers) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	var req generateLogoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in := models.BrandInput{
		BrandName:   req.BrandName,
		Industry:    req.Industry,
		Description: req.Description,
		Values:      req.Values,
		DesignStyle: req.DesignStyle,
	}
	if msg := validateBrandInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	logo := h.Gen.SynthesizeLogo(r.Context(), in, paletteFromHexes(req.Colors))
	writeJSON(w, http.StatusOK, map[string]models.Logo{"logo": logo})
}

// paletteFromHexes assigns palette roles to bare hex strings in order:
// primary, secondary, accent, then base for the rest.
func paletteFromHexes(hexes []string) []models.Color {
	roles := []models.ColorType{models.ColorPrimary, models.ColorSecondary, models.ColorAccent}

	var palette []models.Color
	for i, hex := range hexes {
		role := models.ColorBase
		if i < len(roles) {
			role = roles[i]
		}
		palette = append(palette, models.Color{Hex: hex, Type: role})
	}
	return palette
}

type regenerateElementRequest struct {
	ConceptID   int    `json:"conceptId"`
	ElementType string `json:"elementType"`
}

// RegenerateElement regenerates one facet of a stored concept and merges it
// into the concept's output. A failed regeneration leaves the stored facet
// untouched.
func (h *Handlers) RegenerateElement(w http.ResponseWriter, r *http.Request) {
	var req regenerateElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateRegenerateRequest(req.ConceptID, req.ElementType); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if !brand.ValidFacet(req.ElementType) {
		writeError(w, http.StatusBadRequest, "elementType must be one of: colors, typography, logo, tagline")
		return
	}

	concept, err := h.Store.GetConcept(req.ConceptID)
	if err != nil {
		writeError(w, http.StatusNotFound, "brand concept not found")
		return
	}

	value, err := h.Gen.RegenerateFacet(r.Context(), concept, req.ElementType)
	if err != nil {
		writeBrandError(w, err)
		return
	}

	updated, err := h.Store.SetConceptOutputField(req.ConceptID, req.ElementType, value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.Cache.Invalidate(r.Context(), req.ConceptID)

	writeJSON(w, http.StatusOK, updated)
}
