package theme

// PaletteStops is the number of color stops every palette carries. Stop 0 is
// the most background-like color and stop 11 the most foreground-like.
const PaletteStops = 12

// Palette is an ordered list of color stops.
type Palette []string

// Pair groups the light and dark variants of a palette.
type Pair struct {
	Light Palette `yaml:"light" json:"light" validate:"required,palette,dive,hex_color"`
	Dark  Palette `yaml:"dark" json:"dark" validate:"required,palette,dive,hex_color"`
}

// PaletteSet keys palettes by name: "light", "dark", "light_<accent>", ...
type PaletteSet map[string]Palette

// Root scheme names.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// Default accent names in registration order.
const (
	AccentBlue   = "blue"
	AccentRed    = "red"
	AccentGreen  = "green"
	AccentOrange = "orange"
	AccentPurple = "purple"
	AccentPink   = "pink"
	AccentYellow = "yellow"
)

// DefaultAccentNames is the accent set every brand inherits.
var DefaultAccentNames = []string{
	AccentBlue, AccentRed, AccentGreen, AccentOrange, AccentPurple, AccentPink, AccentYellow,
}

// DefaultBase returns the built-in neutral palette pair.
func DefaultBase() Pair {
	return Pair{
		Light: Palette{"#fcfcfc", "#f9f9f9", "#f0f0f0", "#e8e8e8", "#e0e0e0", "#d9d9d9", "#cecece", "#bbbbbb", "#8d8d8d", "#838383", "#646464", "#202020"},
		Dark:  Palette{"#111111", "#191919", "#222222", "#2a2a2a", "#313131", "#3a3a3a", "#484848", "#606060", "#6e6e6e", "#7b7b7b", "#b4b4b4", "#eeeeee"},
	}
}

// DefaultAccents returns fresh copies of the built-in accent palettes.
func DefaultAccents() map[string]Pair {
	out := make(map[string]Pair, len(defaultAccents))
	for name, pair := range defaultAccents {
		out[name] = Pair{
			Light: append(Palette(nil), pair.Light...),
			Dark:  append(Palette(nil), pair.Dark...),
		}
	}
	return out
}

var defaultAccents = map[string]Pair{
	AccentBlue: {
		Light: Palette{"#fbfdff", "#f4faff", "#e6f4fe", "#d5efff", "#c2e5ff", "#acd8fc", "#8ec8f6", "#5eb1ef", "#0090ff", "#0588f0", "#0d74ce", "#113264"},
		Dark:  Palette{"#0d1520", "#111927", "#0d2847", "#003362", "#004074", "#104d87", "#205d9e", "#2870bd", "#0090ff", "#3b9eff", "#70b8ff", "#c2e6ff"},
	},
	AccentRed: {
		Light: Palette{"#fffcfc", "#fff7f7", "#feebec", "#ffdbdc", "#ffcdce", "#fdbdbe", "#f4a9aa", "#eb8e90", "#e5484d", "#dc3e42", "#ce2c31", "#641723"},
		Dark:  Palette{"#191111", "#201314", "#3b1219", "#500f1c", "#611623", "#72232d", "#8c333a", "#b54548", "#e5484d", "#ec5d5e", "#ff9592", "#ffd1d9"},
	},
	AccentGreen: {
		Light: Palette{"#fbfefc", "#f4fbf6", "#e6f6eb", "#d6f1df", "#c4e8d1", "#adddc0", "#8eceaa", "#5bb98b", "#30a46c", "#2b9a66", "#218358", "#193b2d"},
		Dark:  Palette{"#0e1512", "#121b17", "#132d21", "#113b29", "#174933", "#20573e", "#28684a", "#2f7c57", "#30a46c", "#33b074", "#3dd68c", "#b1f1cb"},
	},
	AccentOrange: {
		Light: Palette{"#fefcfb", "#fff7ed", "#ffefd6", "#ffdfb5", "#ffd19a", "#ffc182", "#f5ae73", "#ec9455", "#f76b15", "#ef5f00", "#cc4e00", "#582d1d"},
		Dark:  Palette{"#17120e", "#1e160f", "#331e0b", "#462100", "#562800", "#66350c", "#7e451d", "#a35829", "#f76b15", "#ff801f", "#ffa057", "#ffe0c2"},
	},
	AccentPurple: {
		Light: Palette{"#fefcfe", "#fbf7fe", "#f7edfe", "#f2e2fc", "#ead5f9", "#e0c4f4", "#d1afec", "#be93e4", "#8e4ec6", "#8347b9", "#8145b5", "#402060"},
		Dark:  Palette{"#18111b", "#1e1523", "#301c3b", "#3d224e", "#48295c", "#54346b", "#664282", "#8457aa", "#8e4ec6", "#9a5cd0", "#d19dff", "#ecd9fa"},
	},
	AccentPink: {
		Light: Palette{"#fffcfe", "#fef7fb", "#fee9f5", "#fbdcef", "#f6cee7", "#efbfdd", "#e7acd0", "#dd93c2", "#d6409f", "#cf3897", "#c2298a", "#651249"},
		Dark:  Palette{"#191117", "#21121d", "#37172f", "#4b143d", "#591c47", "#692955", "#833869", "#a84885", "#d6409f", "#de51a8", "#ff8dcc", "#fdd1ea"},
	},
	AccentYellow: {
		Light: Palette{"#fdfdf9", "#fefce9", "#fffab8", "#fff394", "#ffe770", "#f3d768", "#e4c767", "#d5ae39", "#ffe629", "#ffdc00", "#9e6c00", "#473b1f"},
		Dark:  Palette{"#14120b", "#1b180f", "#2d2305", "#362b00", "#433500", "#524202", "#665417", "#836a21", "#ffe629", "#ffff57", "#f5e147", "#f6eeb4"},
	},
}
