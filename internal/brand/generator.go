package brand

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"mindtoeye/internal/ai"
	"mindtoeye/internal/models"
)

// Generation settings. Temperature is deliberately non-zero: deterministic
// output would make regeneration pointless.
const (
	genTemperature = 0.7

	maxTokensConcept    = 4000
	maxTokensPalette    = 2000
	maxTokensTypography = 1000
	maxTokensTagline    = 1000
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TextClient is the subset of the provider registry the generator needs.
type TextClient interface {
	GenerateText(ctx context.Context, req ai.TextRequest) (string, error)
}

// Generator orchestrates brand identity generation: it builds prompts,
// calls the text and image providers, and validates the structured payloads
// extracted from their replies.
type Generator struct {
	text   TextClient
	images ai.ImageProvider // may be nil; logo synthesis then always falls back
	log    *slog.Logger
	seed   func() int
}

// NewGenerator creates a Generator. images may be nil when no image provider
// is configured.
func NewGenerator(text TextClient, images ai.ImageProvider, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{
		text:   text,
		images: images,
		log:    log,
		seed:   func() int { return rand.Intn(1_000_000) },
	}
}

// GenerateConcept produces a complete BrandOutput for the given inputs:
// one combined text call for palette, typography, logo description, and
// tagline, followed by logo synthesis.
func (g *Generator) GenerateConcept(ctx context.Context, in models.BrandInput) (models.BrandOutput, error) {
	const op = "generate-concept"

	if strings.TrimSpace(in.BrandName) == "" {
		return models.BrandOutput{}, validationError(op, "brand name is required")
	}

	reqID := uuid.NewString()
	log := g.log.With("op", op, "request_id", reqID, "brand", in.BrandName)
	log.Info("generating brand concept")

	reply, err := g.text.GenerateText(ctx, ai.TextRequest{
		MaxTokens:   maxTokensConcept,
		Temperature: genTemperature,
		System:      conceptSystemPrompt,
		Prompt:      fullConceptPrompt(in, g.seed()),
	})
	if err != nil {
		return models.BrandOutput{}, upstreamError(op, err)
	}
	if strings.TrimSpace(reply) == "" {
		return models.BrandOutput{}, &Error{Kind: KindUpstream, Op: op, Message: "empty response from text provider"}
	}

	obj, err := extractObject(op, reply, "colors", "typography", "logoDescription", "tagline")
	if err != nil {
		return models.BrandOutput{}, err
	}

	var out models.BrandOutput
	if err := json.Unmarshal(obj["colors"], &out.Colors); err != nil {
		return models.BrandOutput{}, shapeError(op, "colors is not an array of swatches: %v", err)
	}
	if err := validatePalette(op, out.Colors); err != nil {
		return models.BrandOutput{}, err
	}
	if err := json.Unmarshal(obj["typography"], &out.Typography); err != nil {
		return models.BrandOutput{}, shapeError(op, "typography is not a {headings, body} object: %v", err)
	}
	if out.Typography.Headings == "" || out.Typography.Body == "" {
		return models.BrandOutput{}, shapeError(op, "typography must name both a headings and a body font")
	}
	if err := json.Unmarshal(obj["logoDescription"], &out.LogoDescription); err != nil {
		return models.BrandOutput{}, shapeError(op, "logoDescription is not a string: %v", err)
	}
	if err := json.Unmarshal(obj["tagline"], &out.Tagline); err != nil {
		return models.BrandOutput{}, shapeError(op, "tagline is not a string: %v", err)
	}
	out.Tagline = strings.TrimSpace(out.Tagline)

	// Optional contact-card extras, used for mockup realism when present.
	for key, dst := range map[string]*string{
		"contactName":  &out.ContactName,
		"contactTitle": &out.ContactTitle,
		"contactPhone": &out.ContactPhone,
		"address":      &out.Address,
	} {
		if raw, ok := obj[key]; ok {
			json.Unmarshal(raw, dst)
		}
	}

	out.Logo = g.SynthesizeLogo(ctx, in, out.Colors)

	log.Info("brand concept generated", "colors", len(out.Colors))
	return out, nil
}

// GeneratePalette produces a fresh standalone color palette.
func (g *Generator) GeneratePalette(ctx context.Context, in models.BrandInput) ([]models.Color, error) {
	const op = "generate-palette"

	if strings.TrimSpace(in.BrandName) == "" {
		return nil, validationError(op, "brand name is required")
	}

	g.log.Info("regenerating palette", "op", op, "brand", in.BrandName)

	reply, err := g.text.GenerateText(ctx, ai.TextRequest{
		MaxTokens:   maxTokensPalette,
		Temperature: genTemperature,
		System:      conceptSystemPrompt,
		Prompt:      palettePrompt(in, g.seed()),
	})
	if err != nil {
		return nil, upstreamError(op, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, &Error{Kind: KindUpstream, Op: op, Message: "empty response from text provider"}
	}

	items, err := extractArray(op, reply)
	if err != nil {
		return nil, err
	}

	palette := make([]models.Color, 0, len(items))
	for _, raw := range items {
		var c models.Color
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, shapeError(op, "palette entry is not a swatch: %v", err)
		}
		palette = append(palette, c)
	}
	if err := validatePalette(op, palette); err != nil {
		return nil, err
	}
	return palette, nil
}

// GenerateTypography produces a fresh font pairing, steered by the concept's
// current palette so the recommendation stays consistent with it.
func (g *Generator) GenerateTypography(ctx context.Context, in models.BrandInput, palette []models.Color) (models.Typography, error) {
	const op = "generate-typography"

	if strings.TrimSpace(in.BrandName) == "" {
		return models.Typography{}, validationError(op, "brand name is required")
	}

	g.log.Info("regenerating typography", "op", op, "brand", in.BrandName)

	reply, err := g.text.GenerateText(ctx, ai.TextRequest{
		MaxTokens:   maxTokensTypography,
		Temperature: genTemperature,
		System:      conceptSystemPrompt,
		Prompt:      typographyPrompt(in, palette, g.seed()),
	})
	if err != nil {
		return models.Typography{}, upstreamError(op, err)
	}
	if strings.TrimSpace(reply) == "" {
		return models.Typography{}, &Error{Kind: KindUpstream, Op: op, Message: "empty response from text provider"}
	}

	obj, err := extractObject(op, reply, "headings", "body")
	if err != nil {
		return models.Typography{}, err
	}

	var t models.Typography
	if err := json.Unmarshal(obj["headings"], &t.Headings); err != nil {
		return models.Typography{}, shapeError(op, "headings is not a string: %v", err)
	}
	if err := json.Unmarshal(obj["body"], &t.Body); err != nil {
		return models.Typography{}, shapeError(op, "body is not a string: %v", err)
	}
	if t.Headings == "" || t.Body == "" {
		return models.Typography{}, shapeError(op, "typography must name both a headings and a body font")
	}
	return t, nil
}

// GenerateTagline produces a fresh tagline. The wire contract with the model
// is a {"tagline": "..."} object; callers receive the bare trimmed string.
func (g *Generator) GenerateTagline(ctx context.Context, in models.BrandInput) (string, error) {
	const op = "generate-tagline"

	if strings.TrimSpace(in.BrandName) == "" {
		return "", validationError(op, "brand name is required")
	}

	g.log.Info("regenerating tagline", "op", op, "brand", in.BrandName)

	reply, err := g.text.GenerateText(ctx, ai.TextRequest{
		MaxTokens:   maxTokensTagline,
		Temperature: genTemperature,
		System:      conceptSystemPrompt,
		Prompt:      taglinePrompt(in, g.seed()),
	})
	if err != nil {
		return "", upstreamError(op, err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", &Error{Kind: KindUpstream, Op: op, Message: "empty response from text provider"}
	}

	obj, err := extractObject(op, reply, "tagline")
	if err != nil {
		return "", err
	}

	var tagline string
	if err := json.Unmarshal(obj["tagline"], &tagline); err != nil {
		return "", shapeError(op, "tagline is not a string: %v", err)
	}
	tagline = strings.TrimSpace(strings.Trim(tagline, `"`))
	if tagline == "" {
		return "", shapeError(op, "tagline is empty")
	}
	return tagline, nil
}

// validatePalette enforces the palette contract: 4-5 swatches, every hex in
// #RRGGBB form, every role from the known set.
func validatePalette(op string, palette []models.Color) error {
	if len(palette) < 4 || len(palette) > 5 {
		return shapeError(op, "palette must contain 4-5 colors, got %d", len(palette))
	}
	for _, c := range palette {
		if !hexPattern.MatchString(c.Hex) {
			return shapeError(op, "color %q has invalid hex code %q", c.Name, c.Hex)
		}
		if !models.ValidColorType(c.Type) {
			return shapeError(op, "color %q has unknown type %q", c.Name, c.Type)
		}
	}
	return nil
}
