// Package fonts resolves the four-slot font configuration into the external
// stylesheet request and parses the stylesheet the font service returns.
package fonts

import (
	"strconv"
	"strings"
)

// Slot names one of the four typeface roles.
type Slot string

const (
	SlotHeading Slot = "heading"
	SlotBody    Slot = "body"
	SlotMono    Slot = "mono"
	SlotQuote   Slot = "quote"
)

// Slots lists every slot in resolution order.
var Slots = []Slot{SlotHeading, SlotBody, SlotMono, SlotQuote}

// Font styles.
const (
	StyleNormal = "normal"
	StyleItalic = "italic"
)

const (
	defaultWeight        = 400
	defaultHeavyWeight   = 700
	defaultHeadingLight  = 400
	defaultFontFaceStyle = StyleNormal
)

// FontFace configures a single-weight slot (body, mono).
type FontFace struct {
	Family   string `yaml:"family" json:"family" validate:"required"`
	Fallback string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Weight   int    `yaml:"weight,omitempty" json:"weight,omitempty" validate:"omitempty,min=1,max=1000"`
}

// EffectiveWeight returns the configured weight or 400.
func (f FontFace) EffectiveWeight() int {
	if f.Weight == 0 {
		return defaultWeight
	}
	return f.Weight
}

// HeadingFont configures the heading slot with its heavy and light weights.
type HeadingFont struct {
	Family      string `yaml:"family" json:"family" validate:"required"`
	Fallback    string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	HeavyWeight int    `yaml:"heavy_weight,omitempty" json:"heavyWeight,omitempty" validate:"omitempty,min=1,max=1000"`
	LightWeight int    `yaml:"light_weight,omitempty" json:"lightWeight,omitempty" validate:"omitempty,min=1,max=1000"`
}

// Heavy returns the heavy weight, defaulting to 700.
func (h HeadingFont) Heavy() int {
	if h.HeavyWeight == 0 {
		return defaultHeavyWeight
	}
	return h.HeavyWeight
}

// Light returns the light weight, defaulting to 400.
func (h HeadingFont) Light() int {
	if h.LightWeight == 0 {
		return defaultHeadingLight
	}
	return h.LightWeight
}

// QuoteFont configures the quote slot. Style defaults to italic.
type QuoteFont struct {
	Family   string `yaml:"family" json:"family" validate:"required"`
	Fallback string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Weight   int    `yaml:"weight,omitempty" json:"weight,omitempty" validate:"omitempty,min=1,max=1000"`
	Style    string `yaml:"style,omitempty" json:"style,omitempty" validate:"omitempty,oneof=italic normal"`
}

// EffectiveWeight returns the configured weight or 400.
func (q QuoteFont) EffectiveWeight() int {
	if q.Weight == 0 {
		return defaultWeight
	}
	return q.Weight
}

// EffectiveStyle returns "italic" unless the slot asks for "normal".
func (q QuoteFont) EffectiveStyle() string {
	if q.Style == StyleNormal {
		return StyleNormal
	}
	return StyleItalic
}

// Config is the high-level four-slot font configuration.
type Config struct {
	Heading HeadingFont `yaml:"heading" json:"heading"`
	Body    FontFace    `yaml:"body" json:"body"`
	Mono    FontFace    `yaml:"mono" json:"mono"`
	Quote   QuoteFont   `yaml:"quote" json:"quote"`
}

// Family returns the bare family name configured for slot.
func (c *Config) Family(slot Slot) string {
	if c == nil {
		return ""
	}
	switch slot {
	case SlotHeading:
		return c.Heading.Family
	case SlotBody:
		return c.Body.Family
	case SlotMono:
		return c.Mono.Family
	case SlotQuote:
		return c.Quote.Family
	}
	return ""
}

// Weights returns the weights slot requires, heavy first for the heading.
func (c *Config) Weights(slot Slot) []int {
	if c == nil {
		return nil
	}
	switch slot {
	case SlotHeading:
		return []int{c.Heading.Heavy(), c.Heading.Light()}
	case SlotBody:
		return []int{c.Body.EffectiveWeight()}
	case SlotMono:
		return []int{c.Mono.EffectiveWeight()}
	case SlotQuote:
		return []int{c.Quote.EffectiveWeight()}
	}
	return nil
}

// Style returns the font style slot renders with.
func (c *Config) Style(slot Slot) string {
	if c != nil && slot == SlotQuote {
		return c.Quote.EffectiveStyle()
	}
	return defaultFontFaceStyle
}

// FamilyString renders "family" or "family, fallback".
func FamilyString(family, fallback string) string {
	if strings.TrimSpace(fallback) == "" {
		return family
	}
	return family + ", " + fallback
}

// FaceKey builds the canonical loaded-font key family_weight_style, with
// spaces in the family replaced by underscores.
func FaceKey(family, weight, style string) string {
	return strings.ReplaceAll(family, " ", "_") + "_" + weight + "_" + style
}

// FaceKeyInt is FaceKey for a numeric weight.
func FaceKeyInt(family string, weight int, style string) string {
	return FaceKey(family, strconv.Itoa(weight), style)
}
