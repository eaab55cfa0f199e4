package store

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"mindtoeye/internal/models"
)

func newProject(t *testing.T, s *MemStore) models.Project {
	t.Helper()
	p, err := s.CreateProject(models.Project{Name: "Solystra", UserID: 1})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return p
}

func newConcept(t *testing.T, s *MemStore, projectID int, isActive *bool) models.BrandConcept {
	t.Helper()
	c, err := s.CreateConcept(models.BrandConcept{
		ProjectID:   projectID,
		Name:        "Concept",
		BrandInputs: models.BrandInput{BrandName: "Solystra"},
	}, isActive)
	if err != nil {
		t.Fatalf("CreateConcept: %v", err)
	}
	return c
}

func boolPtr(b bool) *bool { return &b }

func TestCreateUser_HashesPassword(t *testing.T) {
	s := NewMemStore()

	u, err := s.CreateUser("testuser", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.PasswordHash == "password123" {
		t.Error("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("stored hash should verify against the password: %v", err)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := NewMemStore()

	if _, err := s.CreateUser("testuser", "a"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := s.CreateUser("testuser", "b"); err == nil {
		t.Error("duplicate username should be rejected")
	}
}

func TestProjectCRUD(t *testing.T) {
	s := NewMemStore()

	p := newProject(t, s)
	if p.ID != 1 {
		t.Errorf("first project id: got %d, want 1", p.ID)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := s.GetProject(p.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Name != "Solystra" {
		t.Errorf("name: got %q", got.Name)
	}

	other, _ := s.CreateProject(models.Project{Name: "Other", UserID: 2})
	projects := s.ListProjects(1)
	if len(projects) != 1 || projects[0].ID != p.ID {
		t.Errorf("ListProjects(1): got %v", projects)
	}
	if got := s.ListProjects(2); len(got) != 1 || got[0].ID != other.ID {
		t.Errorf("ListProjects(2): got %v", got)
	}

	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := s.GetProject(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted project should be gone: got %v", err)
	}
}

func TestDeleteProject_CascadesToConcepts(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)
	c1 := newConcept(t, s, p.ID, nil)
	c2 := newConcept(t, s, p.ID, nil)

	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	for _, id := range []int{c1.ID, c2.ID} {
		if _, err := s.GetConcept(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("concept %d should be cascade-deleted: got %v", id, err)
		}
	}
}

func TestCreateConcept_UnknownProject(t *testing.T) {
	s := NewMemStore()

	_, err := s.CreateConcept(models.BrandConcept{ProjectID: 99}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateConcept_FirstConceptAutoActivates(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)

	first := newConcept(t, s, p.ID, nil)
	if !first.IsActive {
		t.Error("first concept with no explicit flag should auto-activate")
	}

	second := newConcept(t, s, p.ID, nil)
	if second.IsActive {
		t.Error("later concept with no explicit flag should stay inactive")
	}

	got, _ := s.GetConcept(first.ID)
	if !got.IsActive {
		t.Error("first concept should remain active")
	}
}

func TestCreateConcept_ExplicitFlagWins(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)

	// Explicit false on the very first concept suppresses auto-activation.
	first := newConcept(t, s, p.ID, boolPtr(false))
	if first.IsActive {
		t.Error("explicit isActive=false should win over auto-activation")
	}

	// Explicit true on a later concept activates it and deactivates siblings.
	second := newConcept(t, s, p.ID, boolPtr(true))
	third := newConcept(t, s, p.ID, boolPtr(true))
	if !third.IsActive {
		t.Error("explicit isActive=true should activate")
	}
	got, _ := s.GetConcept(second.ID)
	if got.IsActive {
		t.Error("previous active concept should be deactivated")
	}
}

func TestSetActiveConcept_DeactivatesSiblings(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)
	c1 := newConcept(t, s, p.ID, boolPtr(true))
	c2 := newConcept(t, s, p.ID, boolPtr(false))

	updated, err := s.SetActiveConcept(c2.ID, p.ID)
	if err != nil {
		t.Fatalf("SetActiveConcept: %v", err)
	}
	if !updated.IsActive {
		t.Error("activated concept should report isActive")
	}

	got1, _ := s.GetConcept(c1.ID)
	got2, _ := s.GetConcept(c2.ID)
	if got1.IsActive {
		t.Error("previously active concept should be deactivated")
	}
	if !got2.IsActive {
		t.Error("newly activated concept should be active")
	}
}

func TestSetActiveConcept_WrongProject(t *testing.T) {
	s := NewMemStore()
	p1 := newProject(t, s)
	p2, _ := s.CreateProject(models.Project{Name: "Other", UserID: 1})
	c := newConcept(t, s, p1.ID, nil)

	if _, err := s.SetActiveConcept(c.ID, p2.ID); err == nil {
		t.Error("activating a concept against the wrong project should fail")
	}
}

func TestSetConceptOutputField_ReplacesExactlyOneField(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)

	c, err := s.CreateConcept(models.BrandConcept{
		ProjectID: p.ID,
		Name:      "Concept",
		BrandOutput: models.BrandOutput{
			Colors:     []models.Color{{Name: "Old", Hex: "#111111", Type: models.ColorPrimary}},
			Typography: models.Typography{Headings: "Montserrat", Body: "Open Sans"},
			Tagline:    "Powering Tomorrow, Today",
		},
	}, nil)
	if err != nil {
		t.Fatalf("CreateConcept: %v", err)
	}

	newPalette := []models.Color{
		{Name: "Dawn Gold", Hex: "#FBBF24", Type: models.ColorPrimary},
		{Name: "Slate", Hex: "#475569", Type: models.ColorSecondary},
		{Name: "Coral", Hex: "#FB7185", Type: models.ColorAccent},
		{Name: "Mist", Hex: "#F1F5F9", Type: models.ColorBase},
	}

	updated, err := s.SetConceptOutputField(c.ID, "colors", newPalette)
	if err != nil {
		t.Fatalf("SetConceptOutputField: %v", err)
	}

	if len(updated.BrandOutput.Colors) != 4 || updated.BrandOutput.Colors[0].Name != "Dawn Gold" {
		t.Errorf("colors not replaced: %+v", updated.BrandOutput.Colors)
	}
	// Every other facet is untouched.
	if updated.BrandOutput.Typography.Headings != "Montserrat" {
		t.Error("typography should be untouched")
	}
	if updated.BrandOutput.Tagline != "Powering Tomorrow, Today" {
		t.Error("tagline should be untouched")
	}
}

func TestSetConceptOutputField_TypeMismatch(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)
	c := newConcept(t, s, p.ID, nil)

	if _, err := s.SetConceptOutputField(c.ID, "colors", "not a palette"); err == nil {
		t.Error("mismatched value type should be rejected")
	}
	if _, err := s.SetConceptOutputField(c.ID, "banner", "x"); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestSetConceptOutputField_EachFacet(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)
	c := newConcept(t, s, p.ID, nil)

	if _, err := s.SetConceptOutputField(c.ID, "typography", models.Typography{Headings: "Lato", Body: "Inter"}); err != nil {
		t.Errorf("typography: %v", err)
	}
	if _, err := s.SetConceptOutputField(c.ID, "logo", models.Logo{Primary: "<svg/>", Monochrome: "<svg/>", Reverse: "<svg/>"}); err != nil {
		t.Errorf("logo: %v", err)
	}
	updated, err := s.SetConceptOutputField(c.ID, "tagline", "Energy Without Limits")
	if err != nil {
		t.Fatalf("tagline: %v", err)
	}

	if updated.BrandOutput.Typography.Headings != "Lato" {
		t.Error("typography not applied")
	}
	if updated.BrandOutput.Logo.Primary != "<svg/>" {
		t.Error("logo not applied")
	}
	if updated.BrandOutput.Tagline != "Energy Without Limits" {
		t.Error("tagline not applied")
	}
}

func TestDeleteConcept(t *testing.T) {
	s := NewMemStore()
	p := newProject(t, s)
	c := newConcept(t, s, p.ID, nil)

	if err := s.DeleteConcept(c.ID); err != nil {
		t.Fatalf("DeleteConcept: %v", err)
	}
	if err := s.DeleteConcept(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should report ErrNotFound: got %v", err)
	}
}

func TestSeed(t *testing.T) {
	s := NewMemStore()
	if err := s.Seed(slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	u, err := s.GetUserByUsername("testuser")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("seeded user id: got %d", u.ID)
	}

	projects := s.ListProjects(1)
	if len(projects) != 1 || projects[0].Name != "Solystra" {
		t.Fatalf("seeded projects: got %v", projects)
	}

	concepts := s.ListConcepts(projects[0].ID)
	if len(concepts) != 1 {
		t.Fatalf("seeded concepts: got %d", len(concepts))
	}
	c := concepts[0]
	if !c.IsActive {
		t.Error("seeded concept should be active")
	}
	if c.BrandOutput.Tagline != "Powering Tomorrow, Today" {
		t.Errorf("seeded tagline: got %q", c.BrandOutput.Tagline)
	}
	if len(c.BrandOutput.Colors) != 5 {
		t.Errorf("seeded palette: got %d colors, want 5", len(c.BrandOutput.Colors))
	}
}
