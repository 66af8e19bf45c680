// Package compiler turns a brand definition into the bundle handed to the
// style engine: merged tokens, the theme tree, resolved typefaces and the
// animation table.
package compiler

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/internal/typography"
	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Bundle is a compiled brand.
type Bundle struct {
	Name          string
	Platform      typography.Platform
	Tokens        tokens.Set
	Outline       tokens.Outline
	Themes        *theme.Tree
	Fonts         typography.Set
	FontConfig    *fonts.Config
	StylesheetURL string
	Animations    map[string]tokens.Animation
}

type bundleJSON struct {
	Name          string                      `json:"name"`
	Platform      typography.Platform         `json:"platform"`
	Tokens        tokens.Set                  `json:"tokens"`
	Outline       tokens.Outline              `json:"outline"`
	Themes        *theme.Tree                 `json:"themes"`
	Fonts         typography.Set              `json:"fonts"`
	FontConfig    *fonts.Config               `json:"fontConfig,omitempty"`
	StylesheetURL string                      `json:"stylesheetUrl,omitempty"`
	Animations    map[string]tokens.Animation `json:"animations"`
}

// MarshalJSON renders the bundle in the shape the style engine consumes.
func (b *Bundle) MarshalJSON() ([]byte, error) {
	return json.Marshal(bundleJSON{
		Name:          b.Name,
		Platform:      b.Platform,
		Tokens:        b.Tokens,
		Outline:       b.Outline,
		Themes:        b.Themes,
		Fonts:         b.Fonts,
		FontConfig:    b.FontConfig,
		StylesheetURL: b.StylesheetURL,
		Animations:    b.Animations,
	})
}

type options struct {
	platform   typography.Platform
	logger     *logger.Logger
	serviceURL string
}

// Option configures Compile.
type Option func(*options)

// WithPlatform selects platform-specific font output. Defaults to web.
func WithPlatform(p typography.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithLogger injects a logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithServiceURL points the stylesheet URL at an alternate font-CSS host.
func WithServiceURL(base string) Option {
	return func(o *options) {
		if base != "" {
			o.serviceURL = base
		}
	}
}

// Compile resolves def into a Bundle. The definition is not mutated.
func Compile(def *brand.Definition, opts ...Option) (*Bundle, error) {
	cfg := options{
		platform:   typography.PlatformWeb,
		logger:     logger.Nop(),
		serviceURL: fonts.DefaultServiceURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if def == nil {
		return nil, apperrors.NewValidationError("brand", "definition is nil", nil)
	}
	if cfg.platform != typography.PlatformWeb && cfg.platform != typography.PlatformNative {
		return nil, apperrors.NewValidationError("platform", "platform must be web or native", nil)
	}

	log := cfg.logger.WithFields(map[string]any{"brand": def.Name, "platform": string(cfg.platform)})

	tree, err := theme.Compile(def.ThemeInput())
	if err != nil {
		log.Error(err, "theme compilation failed")
		return nil, err
	}

	var durations *tokens.Durations
	var easings *tokens.Easings
	if def.Animations != nil {
		durations = def.Animations.Durations
		easings = def.Animations.Easings
	}

	var outline tokens.Outline
	if def.Outline != nil {
		outline = tokens.ResolveOutline(def.Outline.Width, def.Outline.Offset)
	} else {
		outline = tokens.ResolveOutline(nil, nil)
	}

	bundle := &Bundle{
		Name:          def.Name,
		Platform:      cfg.platform,
		Tokens:        tokens.Resolve(def.Tokens),
		Outline:       outline,
		Themes:        tree,
		Fonts:         typography.Resolve(def.Fonts, def.Typography, def.FontOverrides, cfg.platform),
		FontConfig:    def.Fonts,
		StylesheetURL: fonts.BuildStylesheetURLWithBase(cfg.serviceURL, def.Fonts),
		Animations:    tokens.ResolveAnimations(durations, easings),
	}

	log.WithFields(map[string]any{
		"themes":   tree.Len(),
		"families": len(fonts.ExtractFamilies(def.Fonts)),
	}).Debug("brand compiled")

	return bundle, nil
}

// Default compiles the built-in brand for the web platform.
func Default() *Bundle {
	bundle, err := Compile(brand.Default())
	if err != nil {
		panic("compiler: built-in brand does not compile: " + err.Error())
	}
	return bundle
}
