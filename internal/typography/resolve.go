package typography

import (
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

// Flags stamps a single text transform or style across every size step of a
// typeface.
type Flags struct {
	HeadingTransform string `yaml:"heading_transform,omitempty" validate:"omitempty,oneof=none uppercase lowercase capitalize"`
	HeadingStyle     string `yaml:"heading_style,omitempty" validate:"omitempty,oneof=normal italic"`
	BodyTransform    string `yaml:"body_transform,omitempty" validate:"omitempty,oneof=none uppercase lowercase capitalize"`
}

// Override is the low-level per-slot shape. Each field that is set replaces
// the corresponding field of the resolved typeface wholesale.
type Override struct {
	Family        *string                `yaml:"family,omitempty"`
	Size          map[string]float64     `yaml:"size,omitempty"`
	LineHeight    map[string]float64     `yaml:"line_height,omitempty"`
	LetterSpacing map[string]float64     `yaml:"letter_spacing,omitempty"`
	Weight        map[string]string      `yaml:"weight,omitempty"`
	Style         map[string]string      `yaml:"style,omitempty"`
	Transform     map[string]string      `yaml:"transform,omitempty"`
	Face          map[string]FaceVariant `yaml:"face,omitempty"`
}

// Resolve builds the typeface set. cfg, flags and overrides are optional.
// The passes run in a fixed order: base (cfg or defaults), flags, overrides.
func Resolve(cfg *fonts.Config, flags *Flags, overrides map[fonts.Slot]Override, platform Platform) Set {
	set := Defaults()
	if cfg != nil {
		set = fromConfig(cfg, platform)
	}
	if flags != nil {
		applyFlags(&set, *flags)
	}
	for _, slot := range fonts.Slots {
		if ov, ok := overrides[slot]; ok {
			applyOverride(set.slot(slot), ov)
		}
	}
	return set
}

func fromConfig(cfg *fonts.Config, platform Platform) Set {
	def := Defaults()

	heading := def.Heading.clone()
	heading.Family = fonts.FamilyString(cfg.Heading.Family, cfg.Heading.Fallback)
	heading.Weight = alternatingWeights(heading.Size, cfg.Heading.Heavy(), cfg.Heading.Light())

	body := def.Body.clone()
	body.Family = fonts.FamilyString(cfg.Body.Family, cfg.Body.Fallback)
	body.Weight = repeatedWeight(body.Size, cfg.Body.EffectiveWeight())

	mono := def.Mono.clone()
	mono.Family = fonts.FamilyString(cfg.Mono.Family, cfg.Mono.Fallback)
	mono.Weight = repeatedWeight(mono.Size, cfg.Mono.EffectiveWeight())

	quote := def.Quote.clone()
	quote.Family = fonts.FamilyString(cfg.Quote.Family, cfg.Quote.Fallback)
	quote.Weight = repeatedWeight(quote.Size, cfg.Quote.EffectiveWeight())
	quote.Style = repeatedValue(quote.Size, cfg.Quote.EffectiveStyle())

	set := Set{Heading: heading, Body: body, Mono: mono, Quote: quote}
	faceMap := WebFaceMap
	if platform == PlatformNative {
		faceMap = FaceMap
	}
	for _, slot := range fonts.Slots {
		set.slot(slot).Face = faceMap(cfg, slot)
	}
	return set
}

// FaceMap maps each weight slot requires to its loaded-font keys. System
// families are never loaded and produce an empty map.
func FaceMap(cfg *fonts.Config, slot fonts.Slot) map[string]FaceVariant {
	faces := map[string]FaceVariant{}
	family := cfg.Family(slot)
	if family == "" || fonts.IsSystemFont(family) {
		return faces
	}
	italic := cfg.Style(slot) == fonts.StyleItalic
	for _, w := range cfg.Weights(slot) {
		variant := FaceVariant{Normal: fonts.FaceKeyInt(family, w, fonts.StyleNormal)}
		if italic {
			variant.Italic = fonts.FaceKeyInt(family, w, fonts.StyleItalic)
		}
		faces[strconv.Itoa(w)] = variant
	}
	return faces
}

// WebFaceMap is the web counterpart of FaceMap: weights resolve through the
// stylesheet cascade, so it is always empty.
func WebFaceMap(*fonts.Config, fonts.Slot) map[string]FaceVariant {
	return map[string]FaceVariant{}
}

// alternatingWeights assigns light, heavy, light, ... from the smallest step
// upward, so the largest of six headings is heavy.
func alternatingWeights(sizes map[string]float64, heavy, light int) map[string]string {
	steps := sortedSteps(sizes)
	out := make(map[string]string, len(steps))
	for i, step := range steps {
		w := light
		if i%2 == 1 {
			w = heavy
		}
		out[step] = strconv.Itoa(w)
	}
	return out
}

func repeatedWeight(sizes map[string]float64, weight int) map[string]string {
	return repeatedValue(sizes, strconv.Itoa(weight))
}

func repeatedValue(sizes map[string]float64, value string) map[string]string {
	out := make(map[string]string, len(sizes))
	for step := range sizes {
		out[step] = value
	}
	return out
}

func applyFlags(set *Set, flags Flags) {
	if flags.HeadingTransform != "" {
		set.Heading.Transform = repeatedValue(set.Heading.Size, flags.HeadingTransform)
	}
	if flags.HeadingStyle != "" {
		set.Heading.Style = repeatedValue(set.Heading.Size, flags.HeadingStyle)
	}
	if flags.BodyTransform != "" {
		set.Body.Transform = repeatedValue(set.Body.Size, flags.BodyTransform)
	}
}

func applyOverride(tf *Typeface, ov Override) {
	if ov.Family != nil {
		tf.Family = *ov.Family
	}
	if ov.Size != nil {
		tf.Size = cloneFloats(ov.Size)
	}
	if ov.LineHeight != nil {
		tf.LineHeight = cloneFloats(ov.LineHeight)
	}
	if ov.LetterSpacing != nil {
		tf.LetterSpacing = cloneFloats(ov.LetterSpacing)
	}
	if ov.Weight != nil {
		tf.Weight = cloneStrings(ov.Weight)
	}
	if ov.Style != nil {
		tf.Style = cloneStrings(ov.Style)
	}
	if ov.Transform != nil {
		tf.Transform = cloneStrings(ov.Transform)
	}
	if ov.Face != nil {
		tf.Face = cloneFaces(ov.Face)
	}
}
