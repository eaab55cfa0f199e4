package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mindtoeye/internal/models"
)

// ListProjects returns the projects owned by a user. Until authentication
// lands the user id comes from the query string, defaulting to 1.
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID := 1
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "userId must be an integer")
			return
		}
		userID = id
	}

	projects := h.Store.ListProjects(userID)
	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

type createProjectRequest struct {
	Name       string  `json:"name"`
	ClientName *string `json:"clientName"`
	UserID     int     `json:"userId"`
}

// CreateProject creates a new project.
func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateProjectName(req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}

	project, err := h.Store.CreateProject(models.Project{
		Name:       req.Name,
		ClientName: req.ClientName,
		UserID:     req.UserID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// GetProject returns one project.
func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project and all its concepts.
func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	for _, c := range h.Store.ListConcepts(id) {
		h.Cache.Invalidate(r.Context(), c.ID)
	}
	if err := h.Store.DeleteProject(id); err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListConcepts returns all concepts belonging to a project.
func (h *Handlers) ListConcepts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if _, err := h.Store.GetProject(id); err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	concepts := h.Store.ListConcepts(id)
	if concepts == nil {
		concepts = []models.BrandConcept{}
	}
	writeJSON(w, http.StatusOK, concepts)
}

type createConceptRequest struct {
	Name        string             `json:"name"`
	BrandInputs models.BrandInput  `json:"brandInputs"`
	BrandOutput models.BrandOutput `json:"brandOutput"`
	IsActive    *bool              `json:"isActive"`
}

// CreateConcept stores a concept under a project. The isActive rule: an
// explicit flag wins; with no flag, the concept activates only when it is
// the project's first.
func (h *Handlers) CreateConcept(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req createConceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateProjectName(req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateBrandInput(&req.BrandInputs); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	concept, err := h.Store.CreateConcept(models.BrandConcept{
		ProjectID:   projectID,
		Name:        req.Name,
		BrandInputs: req.BrandInputs,
		BrandOutput: req.BrandOutput,
	}, req.IsActive)
	if err != nil {
		if notFound(err) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, concept)
}

// pathID parses an integer chi URL parameter.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}
