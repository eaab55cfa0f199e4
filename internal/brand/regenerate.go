package brand

import (
	"context"

	"mindtoeye/internal/models"
)

// Facets of a concept that can be regenerated independently.
const (
	FacetColors     = "colors"
	FacetTypography = "typography"
	FacetLogo       = "logo"
	FacetTagline    = "tagline"
)

// ValidFacet reports whether name is a regenerable facet.
func ValidFacet(name string) bool {
	switch name {
	case FacetColors, FacetTypography, FacetLogo, FacetTagline:
		return true
	}
	return false
}

// RegenerateFacet regenerates one facet of an existing concept using its
// stored brand inputs. Typography and logo regeneration use the concept's
// current palette as context so they stay consistent with it. The returned
// value is shaped by the facet: []models.Color, models.Typography,
// models.Logo, or a tagline string.
//
// The dispatcher performs no persistence; merging the result into the
// stored concept is the caller's job.
func (g *Generator) RegenerateFacet(ctx context.Context, concept models.BrandConcept, facet string) (any, error) {
	const op = "regenerate-facet"

	in := concept.BrandInputs
	currentPalette := concept.BrandOutput.Colors

	switch facet {
	case FacetColors:
		palette, err := g.GeneratePalette(ctx, in)
		if err != nil {
			return nil, err
		}
		return palette, nil
	case FacetTypography:
		typ, err := g.GenerateTypography(ctx, in, currentPalette)
		if err != nil {
			return nil, err
		}
		return typ, nil
	case FacetLogo:
		return g.SynthesizeLogo(ctx, in, currentPalette), nil
	case FacetTagline:
		tagline, err := g.GenerateTagline(ctx, in)
		if err != nil {
			return nil, err
		}
		return tagline, nil
	default:
		return nil, validationError(op, "unsupported facet %q", facet)
	}
}
