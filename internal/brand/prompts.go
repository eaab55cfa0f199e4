package brand

import (
	"fmt"
	"strings"

	"mindtoeye/internal/models"
)

// Defaults substituted into prompts when the caller leaves a brand fact empty.
const (
	defaultIndustry    = "General business"
	defaultDescription = "A professional business"
	defaultValues      = "Quality, Innovation, Reliability"
	defaultColors      = "Open to suggestions"
)

// conceptSystemPrompt steers the model toward machine-readable output for
// every structured facet request.
const conceptSystemPrompt = "You are a senior brand designer. Respond with only the requested JSON, no commentary."

// promptFacts renders the shared brand-fact block that opens every prompt,
// applying defaults for absent fields.
func promptFacts(in models.BrandInput) string {
	industry := in.Industry
	if industry == "" {
		industry = defaultIndustry
	}
	description := in.Description
	if description == "" {
		description = defaultDescription
	}
	values := strings.Join(in.ValueStrings(), ", ")
	if values == "" {
		values = defaultValues
	}
	style := string(in.DesignStyle)
	if style == "" {
		style = string(models.StyleModern)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Brand Name: %s\n", in.BrandName)
	fmt.Fprintf(&b, "Industry: %s\n", industry)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Core Values: %s\n", values)
	fmt.Fprintf(&b, "Design Style: %s\n", style)
	return b.String()
}

// fullConceptPrompt asks for the complete brand identity package in one call.
// The seed nudges the model toward different output on repeated identical
// requests.
func fullConceptPrompt(in models.BrandInput, seed int) string {
	colors := strings.Join(in.ColorPreferences, ", ")
	if colors == "" {
		colors = defaultColors
	}

	var b strings.Builder
	b.WriteString("Create a comprehensive brand identity concept for the following brand:\n\n")
	b.WriteString(promptFacts(in))
	fmt.Fprintf(&b, "Color Preferences: %s\n", colors)
	fmt.Fprintf(&b, "Variation Seed: %d (use this to vary your creative direction)\n", seed)
	b.WriteString(`
Provide a complete brand identity package that includes:

1. A detailed logo description that could be used to generate a visual logo
2. A color palette with 4-5 colors including primary, secondary, accent, and base colors (with names and hex codes)
3. Typography recommendations for headings and body text
4. A memorable tagline that captures the brand essence

Format your response as a JSON object with this structure:
{
  "logoDescription": "Detailed description of the logo concept",
  "colors": [
    {"name": "Color Name", "hex": "#HEXCODE", "type": "primary/secondary/accent/base"}
  ],
  "typography": {
    "headings": "Heading Font",
    "body": "Body Font"
  },
  "tagline": "Brand Tagline"
}

Make sure the response is valid JSON and the formatting exactly matches the example structure.`)
	return b.String()
}

// palettePrompt asks for a standalone refreshed color palette.
func palettePrompt(in models.BrandInput, seed int) string {
	var b strings.Builder
	b.WriteString("Create a professional color palette for the following brand:\n\n")
	b.WriteString(promptFacts(in))
	fmt.Fprintf(&b, "Variation Seed: %d (use this to vary your creative direction)\n", seed)
	b.WriteString(`
Generate a unique and refreshed color palette with exactly 4 colors:
- A primary brand color
- A secondary color
- An accent color
- A base/neutral color

For each color, provide a creative name that relates to the brand, the exact
hex code, and the type (primary, secondary, accent, or base).

Format your response as a JSON array with this structure:
[
    {"name": "Color Name", "hex": "#HEXCODE", "type": "primary"},
    {"name": "Color Name", "hex": "#HEXCODE", "type": "secondary"},
    {"name": "Color Name", "hex": "#HEXCODE", "type": "accent"},
    {"name": "Color Name", "hex": "#HEXCODE", "type": "base"}
]

Make sure the colors work well together and reflect the brand's personality and industry.
Make sure the response is valid JSON and the formatting exactly matches the example structure.`)
	return b.String()
}

// typographyPrompt asks for a font pairing consistent with the current palette.
func typographyPrompt(in models.BrandInput, palette []models.Color, seed int) string {
	var swatches []string
	for i, c := range palette {
		if i == 3 {
			break
		}
		swatches = append(swatches, fmt.Sprintf("%s (%s)", c.Name, c.Hex))
	}

	var b strings.Builder
	b.WriteString("Recommend typography for the following brand:\n\n")
	b.WriteString(promptFacts(in))
	if len(swatches) > 0 {
		fmt.Fprintf(&b, "Brand Colors: %s\n", strings.Join(swatches, ", "))
	}
	fmt.Fprintf(&b, "Variation Seed: %d (use this to vary your creative direction)\n", seed)
	b.WriteString(`
Suggest a typography pairing that:
- Complements the brand personality and values
- Works well with the design style
- Has a heading font with the right character for the brand
- Has a body text font that is readable and professional

Format your response as a JSON object with this structure:
{
    "headings": "Heading Font Name",
    "body": "Body Font Name"
}

Focus on widely available, professional fonts that enhance the brand identity.
Make sure the response is valid JSON and the formatting exactly matches the example structure.`)
	return b.String()
}

// taglinePrompt asks for a short tagline.
func taglinePrompt(in models.BrandInput, seed int) string {
	var b strings.Builder
	b.WriteString("Create a compelling tagline for the following brand:\n\n")
	b.WriteString(promptFacts(in))
	fmt.Fprintf(&b, "Variation Seed: %d (use this to vary your creative direction)\n", seed)
	b.WriteString(`
Generate a memorable, concise tagline that:
- Captures the essence of the brand
- Reflects the core values
- Is unique and not generic
- Is brief (ideally 3-7 words)

Format your response as a JSON object with this structure:
{
    "tagline": "Your Brand Tagline Here"
}

Make sure the response is valid JSON and the formatting exactly matches the example structure.`)
	return b.String()
}

// imagePrompt builds the instruction for the image model. No text or
// letterforms: logos with baked-in text do not scale and the brand name is
// rendered separately.
func imagePrompt(in models.BrandInput, palette []models.Color) string {
	industry := in.Industry
	if industry == "" {
		industry = defaultIndustry
	}
	values := strings.Join(in.ValueStrings(), ", ")
	if values == "" {
		values = defaultValues
	}
	style := string(in.DesignStyle)
	if style == "" {
		style = string(models.StyleModern)
	}

	var hexes []string
	for _, c := range palette {
		hexes = append(hexes, c.Hex)
	}
	colorLine := "designer's choice of a cohesive palette"
	if len(hexes) > 0 {
		colorLine = "use exactly these colors: " + strings.Join(hexes, ", ")
	}

	return fmt.Sprintf(
		"Professional vector-style logo mark for %q, a %s brand in the %s industry. "+
			"Brand values: %s. A single distinctive symbol, flat design, centered on a plain background, "+
			"clean scalability at small sizes, %s. "+
			"Absolutely no text, letters, words, or typography of any kind.",
		in.BrandName, style, industry, values, colorLine)
}
