package handlers

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"mindtoeye/internal/models"
)

// Input limits. Generous: these guard against abuse, not normal use.
const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxValues         = 20
)

// validateProjectName checks a project name. Returns "" when valid.
func validateProjectName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "name is required"
	}
	if len(name) > maxNameLen {
		return fmt.Sprintf("name must be at most %d characters", maxNameLen)
	}
	return ""
}

// validateBrandInput checks the caller-supplied brand facts and normalizes
// them in place: value labels are trimmed and values missing an id get a
// generated one. Returns "" when valid.
func validateBrandInput(in *models.BrandInput) string {
	in.BrandName = strings.TrimSpace(in.BrandName)
	if in.BrandName == "" {
		return "brandName is required"
	}
	if len(in.BrandName) > maxNameLen {
		return fmt.Sprintf("brandName must be at most %d characters", maxNameLen)
	}
	if len(in.Description) > maxDescriptionLen {
		return fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if in.DesignStyle != "" && !models.ValidDesignStyle(in.DesignStyle) {
		return fmt.Sprintf("designStyle must be one of: modern, classic, minimalist, bold (got %q)", in.DesignStyle)
	}
	if len(in.Values) > maxValues {
		return fmt.Sprintf("at most %d values are allowed", maxValues)
	}
	for i := range in.Values {
		in.Values[i].Value = strings.TrimSpace(in.Values[i].Value)
		if in.Values[i].Value == "" {
			return "values entries must have a non-empty value"
		}
		if in.Values[i].ID == "" {
			id, err := gonanoid.New(8)
			if err != nil {
				return "could not assign value id"
			}
			in.Values[i].ID = id
		}
	}
	return ""
}

// validateRegenerateRequest checks a regenerate-element payload. Returns ""
// when valid.
func validateRegenerateRequest(conceptID int, elementType string) string {
	if conceptID <= 0 {
		return "conceptId is required"
	}
	if elementType == "" {
		return "elementType is required"
	}
	return ""
}
