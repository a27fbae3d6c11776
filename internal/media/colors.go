package media

// ColorScheme is the named color set a theme resolves to. Renderers take it as
// an explicit argument; nothing here is ever absent because the default entry
// is guaranteed.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

var colorSchemes = map[string]ColorScheme{
	"ninja": {
		Primary:    "#2C3E50",
		Secondary:  "#E74C3C",
		Accent:     "#F39C12",
		Background: "#34495E",
		Text:       "#ECF0F1",
	},
	"space": {
		Primary:    "#0F3460",
		Secondary:  "#E94560",
		Accent:     "#16213E",
		Background: "#0F0F23",
		Text:       "#F0F0F0",
	},
	"medieval": {
		Primary:    "#8B4513",
		Secondary:  "#DAA520",
		Accent:     "#CD853F",
		Background: "#654321",
		Text:       "#F5DEB3",
	},
	"forest": {
		Primary:    "#228B22",
		Secondary:  "#FFD700",
		Accent:     "#32CD32",
		Background: "#006400",
		Text:       "#F0FFF0",
	},
	"underwater": {
		Primary:    "#008B8B",
		Secondary:  "#20B2AA",
		Accent:     "#48D1CC",
		Background: "#006666",
		Text:       "#E0FFFF",
	},
	ThemeDefault: {
		Primary:    "#3498DB",
		Secondary:  "#E74C3C",
		Accent:     "#F39C12",
		Background: "#2C3E50",
		Text:       "#ECF0F1",
	},
}

// ColorSchemeFor resolves a theme label to its color scheme. Unknown themes get
// the default scheme, never an error.
func ColorSchemeFor(theme string) ColorScheme {
	if scheme, ok := colorSchemes[theme]; ok {
		return scheme
	}
	return colorSchemes[ThemeDefault]
}
