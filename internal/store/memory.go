// Package store provides the in-memory persistence layer for users,
// projects, and brand concepts. Durability is out of scope: the service is
// a working surface for generated concepts, not a system of record.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mindtoeye/internal/models"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("store: not found")

// MemStore is a mutex-guarded in-memory store. Safe for concurrent use.
type MemStore struct {
	mu sync.RWMutex

	users    map[int]models.User
	projects map[int]models.Project
	concepts map[int]models.BrandConcept

	nextUserID    int
	nextProjectID int
	nextConceptID int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[int]models.User),
		projects:      make(map[int]models.Project),
		concepts:      make(map[int]models.BrandConcept),
		nextUserID:    1,
		nextProjectID: 1,
		nextConceptID: 1,
	}
}

// --- Users ---

// CreateUser stores a new user with a bcrypt-hashed password.
func (s *MemStore) CreateUser(username, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, fmt.Errorf("store: username %q already taken", username)
		}
	}

	u := models.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: string(hash),
	}
	s.users[u.ID] = u
	s.nextUserID++
	return u, nil
}

// GetUserByUsername looks a user up by name.
func (s *MemStore) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// --- Projects ---

// CreateProject stores a new project, assigning its id and timestamp.
func (s *MemStore) CreateProject(p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProjectID
	p.CreatedAt = time.Now().UTC()
	s.projects[p.ID] = p
	s.nextProjectID++
	return p, nil
}

// GetProject returns the project with the given id.
func (s *MemStore) GetProject(id int) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	return p, nil
}

// ListProjects returns all projects owned by a user, oldest first.
func (s *MemStore) ListProjects(userID int) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteProject removes a project and cascades to all its concepts.
func (s *MemStore) DeleteProject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	for cid, c := range s.concepts {
		if c.ProjectID == id {
			delete(s.concepts, cid)
		}
	}
	return nil
}

// --- Concepts ---

// CreateConcept stores a new concept. The activation rule: an explicit
// isActive value wins; when nil, the concept auto-activates only if its
// project has no other concepts. Activating deactivates all siblings under
// the same lock.
func (s *MemStore) CreateConcept(c models.BrandConcept, isActive *bool) (models.BrandConcept, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[c.ProjectID]; !ok {
		return models.BrandConcept{}, ErrNotFound
	}

	siblings := 0
	for _, other := range s.concepts {
		if other.ProjectID == c.ProjectID {
			siblings++
		}
	}

	if isActive != nil {
		c.IsActive = *isActive
	} else {
		c.IsActive = siblings == 0
	}

	if c.IsActive {
		s.deactivateSiblingsLocked(c.ProjectID, 0)
	}

	c.ID = s.nextConceptID
	c.CreatedAt = time.Now().UTC()
	s.concepts[c.ID] = c
	s.nextConceptID++
	return c, nil
}

// GetConcept returns the concept with the given id.
func (s *MemStore) GetConcept(id int) (models.BrandConcept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.concepts[id]
	if !ok {
		return models.BrandConcept{}, ErrNotFound
	}
	return c, nil
}

// ListConcepts returns all concepts belonging to a project, oldest first.
func (s *MemStore) ListConcepts(projectID int) []models.BrandConcept {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BrandConcept
	for _, c := range s.concepts {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteConcept removes a concept.
func (s *MemStore) DeleteConcept(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.concepts[id]; !ok {
		return ErrNotFound
	}
	delete(s.concepts, id)
	return nil
}

// SetActiveConcept marks one concept active and deactivates its siblings
// atomically. The concept must belong to the given project.
func (s *MemStore) SetActiveConcept(conceptID, projectID int) (models.BrandConcept, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.concepts[conceptID]
	if !ok {
		return models.BrandConcept{}, ErrNotFound
	}
	if c.ProjectID != projectID {
		return models.BrandConcept{}, fmt.Errorf("store: concept %d does not belong to project %d", conceptID, projectID)
	}

	s.deactivateSiblingsLocked(projectID, conceptID)
	c.IsActive = true
	s.concepts[conceptID] = c
	return c, nil
}

// SetConceptOutputField replaces exactly one top-level BrandOutput field,
// leaving the rest of the output untouched. The value's type must match the
// facet: []models.Color, models.Typography, models.Logo, or string.
func (s *MemStore) SetConceptOutputField(conceptID int, field string, value any) (models.BrandConcept, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.concepts[conceptID]
	if !ok {
		return models.BrandConcept{}, ErrNotFound
	}

	switch field {
	case "colors":
		palette, ok := value.([]models.Color)
		if !ok {
			return models.BrandConcept{}, fmt.Errorf("store: colors value has type %T", value)
		}
		c.BrandOutput.Colors = palette
	case "typography":
		typ, ok := value.(models.Typography)
		if !ok {
			return models.BrandConcept{}, fmt.Errorf("store: typography value has type %T", value)
		}
		c.BrandOutput.Typography = typ
	case "logo":
		logo, ok := value.(models.Logo)
		if !ok {
			return models.BrandConcept{}, fmt.Errorf("store: logo value has type %T", value)
		}
		c.BrandOutput.Logo = logo
	case "tagline":
		tagline, ok := value.(string)
		if !ok {
			return models.BrandConcept{}, fmt.Errorf("store: tagline value has type %T", value)
		}
		c.BrandOutput.Tagline = tagline
	default:
		return models.BrandConcept{}, fmt.Errorf("store: unknown output field %q", field)
	}

	s.concepts[conceptID] = c
	return c, nil
}

// deactivateSiblingsLocked clears isActive on every concept in the project
// except keep. Callers must hold the write lock.
func (s *MemStore) deactivateSiblingsLocked(projectID, keep int) {
	for id, c := range s.concepts {
		if c.ProjectID == projectID && id != keep && c.IsActive {
			c.IsActive = false
			s.concepts[id] = c
		}
	}
}
