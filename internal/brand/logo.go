package brand

import (
	"context"
	"fmt"

	"mindtoeye/internal/ai"
	"mindtoeye/internal/models"
)

// Fixed fallback roles so placeholder rendering is always well-formed even
// with an empty palette.
const (
	fallbackPrimary   = "#3B82F6"
	fallbackSecondary = "#10B981"
	fallbackAccent    = "#F97316"
)

const (
	logoImageSize  = 1024
	logoImageSteps = 28
)

// SynthesizeLogo produces the three logo variants for a brand. It calls the
// image provider and wraps the first returned image reference in SVG
// containers; on any failure it substitutes a deterministic placeholder
// built from the palette and brand name. It never returns an error: a
// presentable placeholder logo is always available even when real artwork
// is not.
func (g *Generator) SynthesizeLogo(ctx context.Context, in models.BrandInput, palette []models.Color) models.Logo {
	if g.images == nil {
		return placeholderLogo(in.BrandName, palette)
	}

	urls, err := g.images.GenerateImage(ctx, ai.ImageRequest{
		Prompt:            imagePrompt(in, palette),
		Width:             logoImageSize,
		Height:            logoImageSize,
		NegativePrompt:    "text, letters, words, typography, watermark, signature",
		NumOutputs:        1,
		NumInferenceSteps: logoImageSteps,
	})
	if err != nil || len(urls) == 0 || urls[0] == "" {
		g.log.Warn("logo synthesis failed, using placeholder", "brand", in.BrandName, "error", err)
		return placeholderLogo(in.BrandName, palette)
	}

	return wrapImageLogo(urls[0])
}

// wrapImageLogo embeds a generated image reference in three SVG variants.
// Monochrome and reverse are render-time transforms of the same image, not
// separately synthesized artwork.
func wrapImageLogo(url string) models.Logo {
	const size = 200

	primary := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+
			`<image href="%s" width="%d" height="%d"/></svg>`,
		size, size, size, size, url, size, size)

	monochrome := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+
			`<filter id="grayscale"><feColorMatrix type="saturate" values="0"/></filter>`+
			`<image href="%s" width="%d" height="%d" filter="url(#grayscale)"/></svg>`,
		size, size, size, size, url, size, size)

	reverse := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+
			`<filter id="invert"><feColorMatrix type="matrix" values="-1 0 0 0 1 0 -1 0 0 1 0 0 -1 0 1 0 0 0 1 0"/></filter>`+
			`<rect width="%d" height="%d" fill="black"/>`+
			`<image href="%s" width="%d" height="%d" filter="url(#invert)"/></svg>`,
		size, size, size, size, size, size, url, size, size)

	return models.Logo{Primary: primary, Monochrome: monochrome, Reverse: reverse}
}

// placeholderLogo builds the deterministic fallback mark: concentric
// geometry in the brand palette next to the brand name. Identical inputs
// always yield byte-identical output.
func placeholderLogo(brandName string, palette []models.Color) models.Logo {
	primary := paletteHex(palette, models.ColorPrimary, fallbackPrimary)
	secondary := paletteHex(palette, models.ColorSecondary, fallbackSecondary)
	accent := paletteHex(palette, models.ColorAccent, fallbackAccent)

	return models.Logo{
		Primary:    placeholderSVG(brandName, "white", primary, secondary, accent, "#111827"),
		Monochrome: placeholderSVG(brandName, "white", "#000000", "#4B5563", "#9CA3AF", "#111827"),
		Reverse:    placeholderSVG(brandName, "black", "white", secondary, accent, "white"),
	}
}

// placeholderSVG renders one placeholder variant: a filled circle, a ring,
// and an inner dot beside the brand name.
func placeholderSVG(brandName, background, circle, ring, inner, text string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100" width="200" height="100">`+
			`<rect width="200" height="100" fill="%s"/>`+
			`<circle cx="50" cy="50" r="40" fill="%s"/>`+
			`<circle cx="50" cy="50" r="28" fill="none" stroke="%s" stroke-width="4"/>`+
			`<circle cx="50" cy="50" r="12" fill="%s"/>`+
			`<text x="105" y="58" font-family="Arial" font-size="20" font-weight="bold" fill="%s">%s</text>`+
			`</svg>`,
		background, circle, ring, inner, text, brandName)
}

// paletteHex returns the hex of the first swatch with the given role, or
// fallback when the role is absent or malformed.
func paletteHex(palette []models.Color, role models.ColorType, fallback string) string {
	for _, c := range palette {
		if c.Type == role && hexPattern.MatchString(c.Hex) {
			return c.Hex
		}
	}
	return fallback
}
