package models

import "time"

// DesignStyle is the visual direction requested for a brand.
type DesignStyle string

const (
	StyleModern     DesignStyle = "modern"
	StyleClassic    DesignStyle = "classic"
	StyleMinimalist DesignStyle = "minimalist"
	StyleBold       DesignStyle = "bold"
)

// ValidDesignStyle reports whether s is one of the accepted design styles.
func ValidDesignStyle(s DesignStyle) bool {
	switch s {
	case StyleModern, StyleClassic, StyleMinimalist, StyleBold:
		return true
	}
	return false
}

// ColorType is the role a color plays in a palette. Multiple "base" entries
// are allowed; primary/secondary/accent should each appear at most once.
type ColorType string

const (
	ColorPrimary   ColorType = "primary"
	ColorSecondary ColorType = "secondary"
	ColorAccent    ColorType = "accent"
	ColorBase      ColorType = "base"
)

// ValidColorType reports whether t is one of the accepted palette roles.
func ValidColorType(t ColorType) bool {
	switch t {
	case ColorPrimary, ColorSecondary, ColorAccent, ColorBase:
		return true
	}
	return false
}

// BrandValue is a single named value supplied by the caller (e.g.
// "Sustainability"). The id is an opaque client-side handle.
type BrandValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// BrandInput holds the facts a caller supplies about their brand. It is
// immutable once attached to a concept.
type BrandInput struct {
	BrandName        string       `json:"brandName"`
	Industry         string       `json:"industry,omitempty"`
	Description      string       `json:"description,omitempty"`
	Values           []BrandValue `json:"values,omitempty"`
	DesignStyle      DesignStyle  `json:"designStyle,omitempty"`
	ColorPreferences []string     `json:"colorPreferences,omitempty"`
}

// ValueStrings returns just the value labels, in input order.
func (b BrandInput) ValueStrings() []string {
	out := make([]string, 0, len(b.Values))
	for _, v := range b.Values {
		out = append(out, v.Value)
	}
	return out
}

// Color is one swatch of a brand palette.
type Color struct {
	Name string    `json:"name"`
	Hex  string    `json:"hex"`
	Type ColorType `json:"type"`
}

// Typography names the heading and body font families for a brand.
type Typography struct {
	Headings string `json:"headings"`
	Body     string `json:"body"`
}

// Logo holds the three SVG variants of a brand mark. Each entry is a
// complete, self-contained SVG document.
type Logo struct {
	Primary    string `json:"primary"`
	Monochrome string `json:"monochrome"`
	Reverse    string `json:"reverse"`
}

// Mockup references a rendered application of the brand (business card,
// signage, etc.) used for presentation realism.
type Mockup struct {
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl"`
}

// BrandOutput is the generated artifact: logo set, palette, typography,
// tagline, and optional presentation extras.
type BrandOutput struct {
	Logo            Logo       `json:"logo"`
	Colors          []Color    `json:"colors"`
	Typography      Typography `json:"typography"`
	LogoDescription string     `json:"logoDescription,omitempty"`
	Tagline         string     `json:"tagline,omitempty"`
	ContactName     string     `json:"contactName,omitempty"`
	ContactTitle    string     `json:"contactTitle,omitempty"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	Address         string     `json:"address,omitempty"`
	Mockups         []Mockup   `json:"mockups,omitempty"`
}

// BrandConcept is a complete generated brand identity belonging to a project.
// At most one concept per project is active at a time.
type BrandConcept struct {
	ID          int         `json:"id"`
	ProjectID   int         `json:"projectId"`
	Name        string      `json:"name"`
	BrandInputs BrandInput  `json:"brandInputs"`
	BrandOutput BrandOutput `json:"brandOutput"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
}
