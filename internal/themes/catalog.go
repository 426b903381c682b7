// Package themes holds the static invitation theme catalog. The catalog is
// built once at init and shared read-only; callers must not mutate returned
// values.
package themes

// Ornaments are the decorative image slots for a theme.
type Ornaments struct {
	TopLeft  string `json:"top_left"`
	TopRight string `json:"top_right"`
	Bottom   string `json:"bottom"`
	Divider  string `json:"divider"`
}

// Theme describes the visual identity applied to a public invitation.
type Theme struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PrimaryColor      string    `json:"primary_color"`
	SecondaryColor    string    `json:"secondary_color"`
	AccentColor       string    `json:"accent_color"`
	FontHeading       string    `json:"font_heading"`
	FontBody          string    `json:"font_body"`
	Ornaments         Ornaments `json:"ornaments"`
	BackgroundPattern string    `json:"background_pattern"`
}

// DefaultThemeID is used when an invitation references an unknown theme.
const DefaultThemeID = "floral"

var catalog = map[string]Theme{
	"adat": {
		ID:             "adat",
		Name:           "Adat/Traditional",
		Description:    "Tema dengan ornamen tradisional Indonesia",
		PrimaryColor:   "#8B4513",
		SecondaryColor: "#F5DEB3",
		AccentColor:    "#D4AF37",
		FontHeading:    "Cinzel",
		FontBody:       "Manrope",
		Ornaments: Ornaments{
			TopLeft:  "https://images.unsplash.com/photo-1762111067760-1f0fc2aa2866?w=400",
			TopRight: "https://images.unsplash.com/photo-1761517099247-71400d18ccd8?w=400",
			Bottom:   "https://images.unsplash.com/photo-1761515315519-7fa1af1d3e06?w=400",
			Divider:  "https://images.unsplash.com/photo-1762111067760-1f0fc2aa2866?w=200",
		},
		BackgroundPattern: "batik",
	},
	"floral": {
		ID:             "floral",
		Name:           "Floral/Bunga",
		Description:    "Tema dengan dekorasi bunga yang elegan",
		PrimaryColor:   "#B76E79",
		SecondaryColor: "#F5E6E8",
		AccentColor:    "#D4AF37",
		FontHeading:    "Playfair Display",
		FontBody:       "Manrope",
		Ornaments: Ornaments{
			TopLeft:  "https://images.unsplash.com/photo-1581720848095-2b72764b08a2?w=400",
			TopRight: "https://images.unsplash.com/photo-1581720848209-9721f8fa30ff?w=400",
			Bottom:   "https://images.unsplash.com/photo-1762805088436-ffa7b89779a9?w=400",
			Divider:  "https://images.unsplash.com/photo-1581720848095-2b72764b08a2?w=200",
		},
		BackgroundPattern: "floral",
	},
	"modern": {
		ID:                "modern",
		Name:              "Modern/Minimalist",
		Description:       "Tema modern dengan desain minimalis",
		PrimaryColor:      "#2C3E50",
		SecondaryColor:    "#ECF0F1",
		AccentColor:       "#E74C3C",
		FontHeading:       "Montserrat",
		FontBody:          "Open Sans",
		Ornaments:         Ornaments{},
		BackgroundPattern: "none",
	},
}

// ordered list for stable API output
var order = []string{"adat", "floral", "modern"}

// Get looks up a theme by identifier.
func Get(id string) (Theme, bool) {
	theme, ok := catalog[id]
	return theme, ok
}

// GetOrDefault returns the theme for id, falling back to the floral default
// for unknown identifiers.
func GetOrDefault(id string) Theme {
	if theme, ok := catalog[id]; ok {
		return theme
	}
	return catalog[DefaultThemeID]
}

// List returns all themes in catalog order.
func List() []Theme {
	out := make([]Theme, 0, len(order))
	for _, id := range order {
		out = append(out, catalog[id])
	}
	return out
}

// IsKnown reports whether an identifier names a catalogued theme.
func IsKnown(id string) bool {
	_, ok := catalog[id]
	return ok
}
