// Package brand defines the BrandDefinition document and loads it from YAML.
package brand

import (
	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/internal/typography"
)

// Definition is the single authorable brand artifact.
type Definition struct {
	Name          string                             `yaml:"name" validate:"required,min=1,max=100"`
	Palettes      theme.Pair                         `yaml:"palettes"`
	Accents       map[string]theme.Pair              `yaml:"accents,omitempty" validate:"omitempty,dive,keys,accent_name,endkeys"`
	Tokens        tokens.Overrides                   `yaml:"tokens,omitempty"`
	Outline       *Outline                           `yaml:"outline,omitempty"`
	Shadows       *theme.Shadows                     `yaml:"shadows,omitempty"`
	Typography    *typography.Flags                  `yaml:"typography,omitempty"`
	Animations    *Animations                        `yaml:"animations,omitempty"`
	Fonts         *fonts.Config                      `yaml:"fonts,omitempty"`
	FontOverrides map[fonts.Slot]typography.Override `yaml:"font_overrides,omitempty" validate:"omitempty,dive,keys,oneof=heading body mono quote,endkeys"`
}

// Outline overrides the focus outline geometry.
type Outline struct {
	Width  *float64 `yaml:"width,omitempty" validate:"omitempty,min=0"`
	Offset *float64 `yaml:"offset,omitempty"`
}

// Animations overrides animation speeds and curves.
type Animations struct {
	Durations *tokens.Durations `yaml:"durations,omitempty"`
	Easings   *tokens.Easings   `yaml:"easings,omitempty"`
}

// ThemeInput extracts what the theme tree builder consumes.
func (d *Definition) ThemeInput() theme.Input {
	return theme.Input{
		Base:    d.Palettes,
		Accents: d.Accents,
		Shadows: d.Shadows,
	}
}

// Default returns the built-in brand: neutral base palettes, default accents
// and system fonts.
func Default() *Definition {
	return &Definition{
		Name:     "default",
		Palettes: theme.DefaultBase(),
	}
}
