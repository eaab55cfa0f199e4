package brand

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"mindtoeye/internal/ai"
	"mindtoeye/internal/models"
)

// stubText is a canned text provider that records every request it receives.
type stubText struct {
	reply string
	err   error
	calls int
	last  ai.TextRequest
}

func (s *stubText) GenerateText(ctx context.Context, req ai.TextRequest) (string, error) {
	s.calls++
	s.last = req
	return s.reply, s.err
}

// failingImages always errors, forcing the placeholder path.
type failingImages struct {
	calls int
}

func (f *failingImages) Name() string { return "failing" }

func (f *failingImages) GenerateImage(ctx context.Context, req ai.ImageRequest) ([]string, error) {
	f.calls++
	return nil, errors.New("image service unavailable")
}

// stubImages returns fixed URLs and records the prompt.
type stubImages struct {
	urls []string
	last ai.ImageRequest
}

func (s *stubImages) Name() string { return "stub" }

func (s *stubImages) GenerateImage(ctx context.Context, req ai.ImageRequest) ([]string, error) {
	s.last = req
	return s.urls, nil
}

func testGenerator(text TextClient, images ai.ImageProvider) *Generator {
	g := NewGenerator(text, images, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.seed = func() int { return 42 }
	return g
}

const conceptReply = `Here is your brand concept:
{
  "logoDescription": "A stylized sun rising over a circuit grid",
  "colors": [
    {"name": "Solar Blue", "hex": "#2563EB", "type": "primary"},
    {"name": "Energy Orange", "hex": "#F97316", "type": "secondary"},
    {"name": "Eco Green", "hex": "#10B981", "type": "accent"},
    {"name": "Cloud White", "hex": "#F8FAFC", "type": "base"}
  ],
  "typography": {"headings": "Montserrat", "body": "Open Sans"},
  "tagline": "Powering Tomorrow, Today"
}`

var solystraInput = models.BrandInput{
	BrandName:        "Solystra",
	Industry:         "Renewable Energy",
	Values:           []models.BrandValue{{ID: "1", Value: "Sustainability"}},
	DesignStyle:      models.StyleModern,
	ColorPreferences: []string{"blue", "green"},
}

func TestGenerateConcept_Solystra(t *testing.T) {
	text := &stubText{reply: conceptReply}
	g := testGenerator(text, &failingImages{})

	out, err := g.GenerateConcept(context.Background(), solystraInput)
	if err != nil {
		t.Fatalf("GenerateConcept: %v", err)
	}

	if len(out.Colors) < 4 || len(out.Colors) > 5 {
		t.Errorf("colors: got %d entries, want 4-5", len(out.Colors))
	}
	var hasPrimary bool
	for _, c := range out.Colors {
		if !hexPattern.MatchString(c.Hex) {
			t.Errorf("color %q has bad hex %q", c.Name, c.Hex)
		}
		if c.Type == models.ColorPrimary {
			hasPrimary = true
		}
	}
	if !hasPrimary {
		t.Error("palette should include a primary color")
	}

	if out.Typography.Headings != "Montserrat" || out.Typography.Body != "Open Sans" {
		t.Errorf("typography: got %+v", out.Typography)
	}
	if out.Tagline == "" || len(strings.Fields(out.Tagline)) > 10 {
		t.Errorf("tagline should be a short non-empty string: got %q", out.Tagline)
	}
	if out.LogoDescription == "" {
		t.Error("logoDescription should be populated")
	}

	// Image service failed, so the logo must be the placeholder set.
	if out.Logo.Primary == "" || out.Logo.Monochrome == "" || out.Logo.Reverse == "" {
		t.Error("all three logo variants must be present")
	}
	if !strings.Contains(out.Logo.Primary, "#2563EB") {
		t.Error("placeholder should use the generated primary hex")
	}
}

func TestGenerateConcept_EmptyBrandName(t *testing.T) {
	text := &stubText{reply: conceptReply}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), models.BrandInput{BrandName: "   "})
	if err == nil {
		t.Fatal("expected error for empty brand name")
	}
	if KindOf(err) != KindValidation {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindValidation)
	}
	if text.calls != 0 {
		t.Errorf("no network call should be made: got %d calls", text.calls)
	}
}

func TestGenerateConcept_RequestParameters(t *testing.T) {
	text := &stubText{reply: conceptReply}
	g := testGenerator(text, nil)

	if _, err := g.GenerateConcept(context.Background(), solystraInput); err != nil {
		t.Fatalf("GenerateConcept: %v", err)
	}

	if text.last.MaxTokens != 4000 {
		t.Errorf("max tokens: got %d, want 4000", text.last.MaxTokens)
	}
	if text.last.Temperature != 0.7 {
		t.Errorf("temperature: got %v, want 0.7", text.last.Temperature)
	}
	if text.last.System == "" {
		t.Error("system directive should be set")
	}
	for _, want := range []string{"Solystra", "Renewable Energy", "Sustainability", "modern", "blue, green"} {
		if !strings.Contains(text.last.Prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
}

func TestGenerateConcept_AppliesDefaults(t *testing.T) {
	text := &stubText{reply: conceptReply}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), models.BrandInput{BrandName: "Acme"})
	if err != nil {
		t.Fatalf("GenerateConcept: %v", err)
	}

	for _, want := range []string{"General business", "Quality, Innovation, Reliability", "modern", "Open to suggestions"} {
		if !strings.Contains(text.last.Prompt, want) {
			t.Errorf("prompt should contain default %q", want)
		}
	}
}

func TestGenerateConcept_UpstreamError(t *testing.T) {
	text := &stubText{err: errors.New("rate limited")}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), solystraInput)
	if KindOf(err) != KindUpstream {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindUpstream)
	}
}

func TestGenerateConcept_EmptyReply(t *testing.T) {
	text := &stubText{reply: "   \n"}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), solystraInput)
	if KindOf(err) != KindUpstream {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindUpstream)
	}
}

func TestGenerateConcept_MissingRequiredKeys(t *testing.T) {
	text := &stubText{reply: `{"colors": [], "typography": {"headings": "A", "body": "B"}}`}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), solystraInput)
	if KindOf(err) != KindShape {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindShape)
	}
}

func TestGenerateConcept_BadHex(t *testing.T) {
	reply := strings.Replace(conceptReply, "#2563EB", "blue-ish", 1)
	text := &stubText{reply: reply}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), solystraInput)
	if KindOf(err) != KindShape {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindShape)
	}
}

func TestGenerateConcept_Unparseable(t *testing.T) {
	text := &stubText{reply: "Sorry, I cannot help with that request."}
	g := testGenerator(text, nil)

	_, err := g.GenerateConcept(context.Background(), solystraInput)
	if KindOf(err) != KindParse {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindParse)
	}
}

func TestGeneratePalette_Success(t *testing.T) {
	text := &stubText{reply: `Here you go:
[
  {"name": "Dawn Gold", "hex": "#FBBF24", "type": "primary"},
  {"name": "Slate", "hex": "#475569", "type": "secondary"},
  {"name": "Coral", "hex": "#FB7185", "type": "accent"},
  {"name": "Mist", "hex": "#F1F5F9", "type": "base"}
]`}
	g := testGenerator(text, nil)

	palette, err := g.GeneratePalette(context.Background(), solystraInput)
	if err != nil {
		t.Fatalf("GeneratePalette: %v", err)
	}
	if len(palette) != 4 {
		t.Fatalf("palette: got %d entries, want 4", len(palette))
	}
	for _, c := range palette {
		if !hexPattern.MatchString(c.Hex) {
			t.Errorf("color %q has bad hex %q", c.Name, c.Hex)
		}
		if !models.ValidColorType(c.Type) {
			t.Errorf("color %q has bad type %q", c.Name, c.Type)
		}
	}
	if text.last.MaxTokens != 2000 {
		t.Errorf("max tokens: got %d, want 2000", text.last.MaxTokens)
	}
}

func TestGeneratePalette_TooFewColors(t *testing.T) {
	text := &stubText{reply: `[{"name": "Only One", "hex": "#112233", "type": "primary"}]`}
	g := testGenerator(text, nil)

	_, err := g.GeneratePalette(context.Background(), solystraInput)
	if KindOf(err) != KindShape {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindShape)
	}
}

func TestGeneratePalette_WrongContainer(t *testing.T) {
	text := &stubText{reply: `{"headings": "Lato", "body": "Inter"}`}
	g := testGenerator(text, nil)

	_, err := g.GeneratePalette(context.Background(), solystraInput)
	if KindOf(err) != KindParse {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindParse)
	}
}

func TestGenerateTypography_Success(t *testing.T) {
	text := &stubText{reply: `{"headings": "Playfair Display", "body": "Source Sans Pro"}`}
	g := testGenerator(text, nil)

	palette := []models.Color{
		{Name: "Solar Blue", Hex: "#2563EB", Type: models.ColorPrimary},
		{Name: "Energy Orange", Hex: "#F97316", Type: models.ColorSecondary},
	}

	typ, err := g.GenerateTypography(context.Background(), solystraInput, palette)
	if err != nil {
		t.Fatalf("GenerateTypography: %v", err)
	}
	if typ.Headings != "Playfair Display" || typ.Body != "Source Sans Pro" {
		t.Errorf("typography: got %+v", typ)
	}
	if text.last.MaxTokens != 1000 {
		t.Errorf("max tokens: got %d, want 1000", text.last.MaxTokens)
	}

	// The current palette steers the recommendation.
	if !strings.Contains(text.last.Prompt, "#2563EB") {
		t.Error("prompt should reference the current palette")
	}
}

func TestGenerateTypography_MissingBody(t *testing.T) {
	text := &stubText{reply: `{"headings": "Lato"}`}
	g := testGenerator(text, nil)

	_, err := g.GenerateTypography(context.Background(), solystraInput, nil)
	if KindOf(err) != KindShape {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindShape)
	}
}

func TestGenerateTagline_ObjectContract(t *testing.T) {
	text := &stubText{reply: "```json\n{\"tagline\": \"Powering Tomorrow, Today\"}\n```"}
	g := testGenerator(text, nil)

	tagline, err := g.GenerateTagline(context.Background(), solystraInput)
	if err != nil {
		t.Fatalf("GenerateTagline: %v", err)
	}
	if tagline != "Powering Tomorrow, Today" {
		t.Errorf("tagline: got %q", tagline)
	}
	if text.last.MaxTokens != 1000 {
		t.Errorf("max tokens: got %d, want 1000", text.last.MaxTokens)
	}
}

func TestGenerateTagline_EmptyTagline(t *testing.T) {
	text := &stubText{reply: `{"tagline": "  "}`}
	g := testGenerator(text, nil)

	_, err := g.GenerateTagline(context.Background(), solystraInput)
	if KindOf(err) != KindShape {
		t.Errorf("kind: got %q, want %q", KindOf(err), KindShape)
	}
}

func TestVarietySeedChangesPrompt(t *testing.T) {
	text := &stubText{reply: conceptReply}
	g := testGenerator(text, nil)

	g.seed = func() int { return 7 }
	if _, err := g.GenerateConcept(context.Background(), solystraInput); err != nil {
		t.Fatalf("GenerateConcept: %v", err)
	}
	first := text.last.Prompt

	g.seed = func() int { return 99 }
	if _, err := g.GenerateConcept(context.Background(), solystraInput); err != nil {
		t.Fatalf("GenerateConcept: %v", err)
	}
	second := text.last.Prompt

	if first == second {
		t.Error("prompts with different seeds should differ")
	}
}
