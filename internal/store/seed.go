package store

import (
	"log/slog"

	"mindtoeye/internal/models"
)

// Seed loads the development fixtures: a test user and the Solystra sample
// project with one active concept. Intended for development mode only.
func (s *MemStore) Seed(log *slog.Logger) error {
	if _, err := s.CreateUser("testuser", "password123"); err != nil {
		return err
	}

	clientName := "Sample Client"
	project, err := s.CreateProject(models.Project{
		Name:       "Solystra",
		ClientName: &clientName,
		UserID:     1,
	})
	if err != nil {
		return err
	}

	active := true
	_, err = s.CreateConcept(models.BrandConcept{
		ProjectID: project.ID,
		Name:      "Initial Concept",
		BrandInputs: models.BrandInput{
			BrandName:   "Solystra",
			Industry:    "Renewable Energy",
			Description: "Solar energy solutions for modern homes",
			Values: []models.BrandValue{
				{ID: "1", Value: "Sustainability"},
				{ID: "2", Value: "Innovation"},
				{ID: "3", Value: "Reliability"},
			},
			DesignStyle:      models.StyleModern,
			ColorPreferences: []string{"blue", "green", "orange"},
		},
		BrandOutput: models.BrandOutput{
			Logo: models.Logo{
				Primary:    `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><circle cx="100" cy="100" r="80" fill="#2563EB"/><circle cx="100" cy="100" r="40" fill="#F97316"/><path d="M100 20 L160 100 L100 180 L40 100 Z" fill="none" stroke="#10B981" stroke-width="4"/></svg>`,
				Monochrome: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><circle cx="100" cy="100" r="80" fill="#000000"/><circle cx="100" cy="100" r="40" fill="#FFFFFF"/><path d="M100 20 L160 100 L100 180 L40 100 Z" fill="none" stroke="#888888" stroke-width="4"/></svg>`,
				Reverse:    `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><circle cx="100" cy="100" r="80" fill="#FFFFFF"/><circle cx="100" cy="100" r="40" fill="#000000"/><path d="M100 20 L160 100 L100 180 L40 100 Z" fill="none" stroke="#CCCCCC" stroke-width="4"/></svg>`,
			},
			Colors: []models.Color{
				{Name: "Solar Blue", Hex: "#2563EB", Type: models.ColorPrimary},
				{Name: "Energy Orange", Hex: "#F97316", Type: models.ColorSecondary},
				{Name: "Eco Green", Hex: "#10B981", Type: models.ColorAccent},
				{Name: "Cloud White", Hex: "#F8FAFC", Type: models.ColorBase},
				{Name: "Night Blue", Hex: "#1E3A8A", Type: models.ColorBase},
			},
			Typography: models.Typography{
				Headings: "Montserrat",
				Body:     "Open Sans",
			},
			Tagline:         "Powering Tomorrow, Today",
			LogoDescription: "A modern, abstract representation of the sun (orange circle) with solar rays (blue circle) and a diamond shape representing homes and buildings (green outline).",
		},
	}, &active)
	if err != nil {
		return err
	}

	log.Info("development data seeded", "project", project.Name)
	return nil
}
