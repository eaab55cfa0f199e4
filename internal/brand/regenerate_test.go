package brand

import (
	"context"
	"strings"
	"testing"

	"mindtoeye/internal/models"
)

func testConcept() models.BrandConcept {
	return models.BrandConcept{
		ID:          1,
		ProjectID:   1,
		Name:        "Initial Concept",
		BrandInputs: solystraInput,
		BrandOutput: models.BrandOutput{
			Colors:     testPalette,
			Typography: models.Typography{Headings: "Montserrat", Body: "Open Sans"},
			Tagline:    "Powering Tomorrow, Today",
		},
	}
}

func TestRegenerateFacet_Colors(t *testing.T) {
	text := &stubText{reply: `[
  {"name": "Dawn Gold", "hex": "#FBBF24", "type": "primary"},
  {"name": "Slate", "hex": "#475569", "type": "secondary"},
  {"name": "Coral", "hex": "#FB7185", "type": "accent"},
  {"name": "Mist", "hex": "#F1F5F9", "type": "base"}
]`}
	g := testGenerator(text, nil)

	result, err := g.RegenerateFacet(context.Background(), testConcept(), FacetColors)
	if err != nil {
		t.Fatalf("RegenerateFacet: %v", err)
	}

	palette, ok := result.([]models.Color)
	if !ok {
		t.Fatalf("result type: got %T, want []models.Color", result)
	}
	if len(palette) != 4 {
		t.Errorf("palette: got %d entries, want 4", len(palette))
	}
}

func TestRegenerateFacet_TypographyUsesCurrentPalette(t *testing.T) {
	text := &stubText{reply: `{"headings": "Lato", "body": "Inter"}`}
	g := testGenerator(text, nil)

	result, err := g.RegenerateFacet(context.Background(), testConcept(), FacetTypography)
	if err != nil {
		t.Fatalf("RegenerateFacet: %v", err)
	}

	if _, ok := result.(models.Typography); !ok {
		t.Fatalf("result type: got %T, want models.Typography", result)
	}
	// The concept's stored palette, not a fresh one, steers the prompt.
	if !strings.Contains(text.last.Prompt, "#2563EB") {
		t.Error("typography prompt should reference the concept's current palette")
	}
}

func TestRegenerateFacet_LogoUsesCurrentPalette(t *testing.T) {
	images := &stubImages{urls: []string{"https://example.com/logo.png"}}
	g := testGenerator(&stubText{}, images)

	result, err := g.RegenerateFacet(context.Background(), testConcept(), FacetLogo)
	if err != nil {
		t.Fatalf("RegenerateFacet: %v", err)
	}

	if _, ok := result.(models.Logo); !ok {
		t.Fatalf("result type: got %T, want models.Logo", result)
	}
	if !strings.Contains(images.last.Prompt, "#2563EB") {
		t.Error("image prompt should carry the concept's current palette hexes")
	}
}

func TestRegenerateFacet_Tagline(t *testing.T) {
	text := &stubText{reply: `{"tagline": "Energy Without Limits"}`}
	g := testGenerator(text, nil)

	result, err := g.RegenerateFacet(context.Background(), testConcept(), FacetTagline)
	if err != nil {
		t.Fatalf("RegenerateFacet: %v", err)
	}

	tagline, ok := result.(string)
	if !ok {
		t.Fatalf("result type: got %T, want string", result)
	}
	if tagline != "Energy Without Limits" {
		t.Errorf("tagline: got %q", tagline)
	}
}

func TestRegenerateFacet_UnsupportedFacet(t *testing.T) {
	text := &stubText{reply: conceptReply}
	images := &failingImages{}
	g := testGenerator(text, images)

	_, err := g.RegenerateFacet(context.Background(), testConcept(), "banner")
	if err == nil {
		t.Fatal("expected error for unsupported facet")
	}
	if KindOf(err) != KindValidation {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindValidation)
	}
	if text.calls != 0 || images.calls != 0 {
		t.Errorf("no network call should be made: text=%d images=%d", text.calls, images.calls)
	}
}

func TestRegenerateFacet_FailureLeavesNoPartialResult(t *testing.T) {
	text := &stubText{reply: "not json at all"}
	g := testGenerator(text, nil)

	result, err := g.RegenerateFacet(context.Background(), testConcept(), FacetColors)
	if err == nil {
		t.Fatal("expected error for unparseable reply")
	}
	if result != nil {
		t.Errorf("failed regeneration must return no value: got %v", result)
	}
}

func TestValidFacet(t *testing.T) {
	for _, facet := range []string{FacetColors, FacetTypography, FacetLogo, FacetTagline} {
		if !ValidFacet(facet) {
			t.Errorf("ValidFacet(%q) should be true", facet)
		}
	}
	for _, facet := range []string{"banner", "", "Colors", "logoDescription"} {
		if ValidFacet(facet) {
			t.Errorf("ValidFacet(%q) should be false", facet)
		}
	}
}
