package theme

import (
	"strconv"
	"strings"
)

// Level is a shadow intensity.
type Level string

const (
	LevelSm  Level = "sm"
	LevelMd  Level = "md"
	LevelLg  Level = "lg"
	LevelXl  Level = "xl"
	Level2xl Level = "2xl"
)

// Levels lists shadow intensities from lightest to strongest.
var Levels = []Level{LevelSm, LevelMd, LevelLg, LevelXl, Level2xl}

// Shadow is a single box shadow: geometry in px plus a color.
type Shadow struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Blur   float64 `yaml:"blur" json:"blur"`
	Spread float64 `yaml:"spread,omitempty" json:"spread,omitempty"`
	Color  string  `yaml:"color" json:"color" validate:"required,color"`
}

// CSS renders the shadow as a CSS box-shadow value.
func (s Shadow) CSS() string {
	return px(s.X) + " " + px(s.Y) + " " + px(s.Blur) + " " + px(s.Spread) + " " + s.Color
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ShadowScale holds the shadows defined for one color mode. Levels may be absent.
type ShadowScale map[Level]Shadow

// Shadows holds optional per-mode shadow scales.
type Shadows struct {
	Light ShadowScale `yaml:"light,omitempty" validate:"omitempty,dive,keys,oneof=sm md lg xl 2xl,endkeys"`
	Dark  ShadowScale `yaml:"dark,omitempty" validate:"omitempty,dive,keys,oneof=sm md lg xl 2xl,endkeys"`
}

const (
	shadowPrefix      = "shadow"
	shadowColorSuffix = "Color"
)

// ShadowVariable returns the theme variable holding the CSS string for level.
func ShadowVariable(level Level) string {
	s := string(level)
	if s == "" {
		return shadowPrefix
	}
	// "2xl" keeps its digit; alphabetic levels are title-cased.
	return shadowPrefix + strings.ToUpper(s[:1]) + s[1:]
}

// ShadowColorVariable returns the theme variable holding level's plain color.
func ShadowColorVariable(level Level) string {
	return ShadowVariable(level) + shadowColorSuffix
}

// ParseShadowVariable maps a variable emitted by ShadowScaleToThemeValues
// back to its level, reporting whether it is the color twin.
func ParseShadowVariable(name string) (level Level, isColor bool, ok bool) {
	for _, l := range Levels {
		switch name {
		case ShadowVariable(l):
			return l, false, true
		case ShadowColorVariable(l):
			return l, true, true
		}
	}
	return "", false, false
}

// ShadowScaleToThemeValues emits two variables per level present in scale:
// the CSS string and its plain color. Absent levels emit nothing.
func ShadowScaleToThemeValues(scale ShadowScale) map[string]string {
	out := make(map[string]string, len(scale)*2)
	for _, level := range Levels {
		shadow, ok := scale[level]
		if !ok {
			continue
		}
		out[ShadowVariable(level)] = shadow.CSS()
		out[ShadowColorVariable(level)] = shadow.Color
	}
	return out
}

// DefaultShadows returns the built-in shadow scale for a scheme.
func DefaultShadows(scheme string) ShadowScale {
	if scheme == SchemeDark {
		return ShadowScale{
			LevelSm:  {X: 0, Y: 1, Blur: 2, Color: "rgba(0,0,0,0.3)"},
			LevelMd:  {X: 0, Y: 2, Blur: 6, Color: "rgba(0,0,0,0.35)"},
			LevelLg:  {X: 0, Y: 6, Blur: 16, Color: "rgba(0,0,0,0.4)"},
			LevelXl:  {X: 0, Y: 12, Blur: 28, Spread: -4, Color: "rgba(0,0,0,0.45)"},
			Level2xl: {X: 0, Y: 24, Blur: 48, Spread: -8, Color: "rgba(0,0,0,0.55)"},
		}
	}
	return ShadowScale{
		LevelSm:  {X: 0, Y: 1, Blur: 2, Color: "rgba(0,0,0,0.05)"},
		LevelMd:  {X: 0, Y: 2, Blur: 6, Color: "rgba(0,0,0,0.08)"},
		LevelLg:  {X: 0, Y: 6, Blur: 16, Color: "rgba(0,0,0,0.1)"},
		LevelXl:  {X: 0, Y: 12, Blur: 28, Spread: -4, Color: "rgba(0,0,0,0.12)"},
		Level2xl: {X: 0, Y: 24, Blur: 48, Spread: -8, Color: "rgba(0,0,0,0.16)"},
	}
}
