package scanner

import (
	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

// catalogStyle pairs a taxonomy entry with the fixed confidence reported by
// canned mock results. Styles without one are never served by the mock.
type catalogStyle struct {
	models.Style
	cannedConfidence float64
}

var styleCatalog = []catalogStyle{
	{
		Style: models.Style{
			ID:              "modern",
			Name:            "Modern",
			Description:     "Clean lines, minimalist, neutral colors with bold accents.",
			DominantColor:   "#FAFAFA",
			AccentColor:     "#263238",
			MatchedFeatures: []string{"clean lines", "neutral palette", "bold accents", "sleek finishes"},
			PopularItems:    []string{"sleek sofas", "minimalist coffee tables", "geometric decor"},
			EcoScore:        82,
		},
		cannedConfidence: 0.85,
	},
	{
		Style: models.Style{
			ID:              "minimalist",
			Name:            "Minimalist",
			Description:     "Clean lines and uncluttered space with a focus on functionality.",
			DominantColor:   "#F5F5F5",
			AccentColor:     "#212121",
			MatchedFeatures: []string{"clean lines", "neutral palette", "uncluttered space", "functional layout"},
			PopularItems:    []string{"low-profile beds", "hidden storage", "monochrome textiles"},
			EcoScore:        85,
		},
		cannedConfidence: 0.87,
	},
	{
		Style: models.Style{
			ID:              "scandinavian",
			Name:            "Scandinavian",
			Description:     "Light, airy spaces with natural materials and simple forms.",
			DominantColor:   "#FFFFFF",
			AccentColor:     "#E0E0E0",
			MatchedFeatures: []string{"light wood", "white walls", "natural light", "cozy textiles"},
			PopularItems:    []string{"light wood furniture", "white shelving", "cozy textiles"},
			EcoScore:        92,
		},
		cannedConfidence: 0.92,
	},
	{
		Style: models.Style{
			ID:              "industrial",
			Name:            "Industrial",
			Description:     "Raw, unfinished elements with metal accents and exposed architecture.",
			DominantColor:   "#616161",
			AccentColor:     "#8D6E63",
			MatchedFeatures: []string{"exposed brick", "metal fixtures", "concrete surfaces", "open ceiling"},
			PopularItems:    []string{"metal bookshelves", "leather sofas", "Edison bulb lighting"},
			EcoScore:        78,
		},
		cannedConfidence: 0.78,
	},
	{
		Style: models.Style{
			ID:              "mid-century",
			Name:            "Mid-Century Modern",
			Description:     "Retro-inspired design with organic forms and bold colors.",
			DominantColor:   "#FFECB3",
			AccentColor:     "#FF6F00",
			MatchedFeatures: []string{"tapered legs", "organic shapes", "bold accent colors", "functional design"},
			PopularItems:    []string{"Eames-style chairs", "teak sideboards", "atomic age decor"},
			EcoScore:        80,
		},
		cannedConfidence: 0.83,
	},
	{
		Style: models.Style{
			ID:              "bohemian",
			Name:            "Bohemian",
			Description:     "Eclectic mix of patterns, textures, and global influences.",
			DominantColor:   "#EFEBE9",
			AccentColor:     "#6D4C41",
			MatchedFeatures: []string{"layered textiles", "mixed patterns", "plants", "global artifacts"},
			PopularItems:    []string{"macrame wall hangings", "colorful rugs", "rattan furniture"},
			EcoScore:        88,
		},
		cannedConfidence: 0.75,
	},
	{
		Style: models.Style{
			ID:              "traditional",
			Name:            "Traditional",
			Description:     "Classic European forms, rich wood tones and symmetrical arrangements.",
			DominantColor:   "#5D4037",
			AccentColor:     "#B71C1C",
			MatchedFeatures: []string{"dark wood", "symmetry", "ornate details", "rich fabrics"},
			PopularItems:    []string{"wingback chairs", "claw-foot tables", "damask drapes"},
			EcoScore:        72,
		},
	},
	{
		Style: models.Style{
			ID:              "coastal",
			Name:            "Coastal",
			Description:     "Breezy, light-filled rooms in sand and sea tones.",
			DominantColor:   "#E1F5FE",
			AccentColor:     "#0277BD",
			MatchedFeatures: []string{"natural light", "light blue palette", "woven textures", "weathered wood"},
			PopularItems:    []string{"slipcovered sofas", "jute rugs", "driftwood decor"},
			EcoScore:        86,
		},
	},
	{
		Style: models.Style{
			ID:              "farmhouse",
			Name:            "Farmhouse",
			Description:     "Rustic warmth with reclaimed wood and practical, lived-in pieces.",
			DominantColor:   "#F5F0E6",
			AccentColor:     "#455A64",
			MatchedFeatures: []string{"reclaimed wood", "shiplap walls", "vintage hardware", "neutral palette"},
			PopularItems:    []string{"trestle tables", "barn door cabinets", "galvanized lighting"},
			EcoScore:        84,
		},
	},
	{
		Style: models.Style{
			ID:              "contemporary",
			Name:            "Contemporary",
			Description:     "Current trends with soft curves, mixed materials and open layouts.",
			DominantColor:   "#ECEFF1",
			AccentColor:     "#37474F",
			MatchedFeatures: []string{"soft curves", "mixed materials", "open layout", "statement lighting"},
			PopularItems:    []string{"curved sofas", "sculptural lamps", "glass side tables"},
			EcoScore:        80,
		},
	},
}

// FallbackStyleID is the style substituted when a scan cannot be analysed
const FallbackStyleID = "mid-century"

// Styles returns the style taxonomy in catalog order
func Styles() []models.Style {
	out := make([]models.Style, len(styleCatalog))
	for i, s := range styleCatalog {
		out[i] = s.Style
	}
	return out
}

// StyleByID looks up a taxonomy entry
func StyleByID(id string) (models.Style, bool) {
	for _, s := range styleCatalog {
		if s.ID == id {
			return s.Style, true
		}
	}
	return models.Style{}, false
}

// FallbackStyle is the canned result used when analysis fails
func FallbackStyle() models.StyleResult {
	for _, s := range styleCatalog {
		if s.ID == FallbackStyleID {
			return models.StyleResult{Style: s.Style, Confidence: s.cannedConfidence}
		}
	}
	return models.StyleResult{}
}

// StylePicker simulates the style classifier. It does not look at the scan:
// the style is a uniform random draw from the taxonomy.
type StylePicker struct {
	rng *lockedRand
}

// NewStylePicker creates a picker; a zero seed draws from the clock
func NewStylePicker(seed uint64) *StylePicker {
	return &StylePicker{rng: newLockedRand(seed)}
}

// Pick draws a style. The winner scores in [0.7, 1.0) and every other style
// in [0, 0.7).
func (p *StylePicker) Pick() models.StyleResult {
	winner := styleCatalog[p.rng.IntN(len(styleCatalog))]

	scores := make(map[string]float64, len(styleCatalog))
	for _, s := range styleCatalog {
		if s.ID == winner.ID {
			scores[s.Name] = 0.7 + p.rng.Float64()*0.3
		} else {
			scores[s.Name] = p.rng.Float64() * 0.7
		}
	}

	return models.StyleResult{
		Style:            winner.Style,
		Confidence:       scores[winner.Name],
		ConfidenceScores: scores,
	}
}

// PickCanned draws a style with its fixed canned confidence, as served by
// the mock scan results endpoint
func (p *StylePicker) PickCanned() models.StyleResult {
	s := cannedStyles[p.rng.IntN(len(cannedStyles))]
	return models.StyleResult{Style: s.Style, Confidence: s.cannedConfidence}
}

var cannedStyles = func() []catalogStyle {
	var out []catalogStyle
	for _, s := range styleCatalog {
		if s.cannedConfidence > 0 {
			out = append(out, s)
		}
	}
	return out
}()
