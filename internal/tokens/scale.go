// Package tokens holds the default design-token scales and merges brand
// overrides onto them.
package tokens

import "sort"

// Scale maps a step key ("0", "0.5", "4", "true", ...) to a numeric token value.
type Scale map[string]float64

// Keys returns the scale's keys in a stable order.
func (s Scale) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the scale.
func (s Scale) Clone() Scale {
	if s == nil {
		return nil
	}
	out := make(Scale, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new scale holding every key of def, with values replaced by
// override where override defines the same key, plus keys only override has.
// Neither input is modified.
func Merge(def, override Scale) Scale {
	out := make(Scale, len(def)+len(override))
	for k, v := range def {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Overrides carries the optional per-scale partial maps supplied by a brand.
type Overrides struct {
	Size        Scale `yaml:"size,omitempty" json:"size,omitempty"`
	Space       Scale `yaml:"space,omitempty" json:"space,omitempty"`
	Radius      Scale `yaml:"radius,omitempty" json:"radius,omitempty"`
	ZIndex      Scale `yaml:"z_index,omitempty" json:"zIndex,omitempty"`
	BorderWidth Scale `yaml:"border_width,omitempty" json:"borderWidth,omitempty"`
}

// Set is the fully resolved group of scales handed to the style engine.
type Set struct {
	Size        Scale `json:"size"`
	Space       Scale `json:"space"`
	Radius      Scale `json:"radius"`
	ZIndex      Scale `json:"zIndex"`
	BorderWidth Scale `json:"borderWidth"`
}

// Resolve merges each override map onto its default scale independently.
func Resolve(overrides Overrides) Set {
	return Set{
		Size:        Merge(DefaultSize(), overrides.Size),
		Space:       Merge(DefaultSpace(), overrides.Space),
		Radius:      Merge(DefaultRadius(), overrides.Radius),
		ZIndex:      Merge(DefaultZIndex(), overrides.ZIndex),
		BorderWidth: Merge(DefaultBorderWidth(), overrides.BorderWidth),
	}
}

var (
	defaultSize = Scale{
		"0": 0, "0.25": 2, "0.5": 4, "0.75": 8, "1": 20, "1.5": 24, "2": 28, "2.5": 32,
		"3": 36, "3.5": 40, "4": 44, "true": 44, "4.5": 48, "5": 52, "6": 64, "7": 74,
		"8": 84, "9": 94, "10": 104, "11": 124, "12": 144, "13": 164, "14": 184,
		"15": 204, "16": 224,
	}

	defaultSpace = Scale{
		"0": 0, "0.25": 0.5, "0.5": 1, "0.75": 1.5, "1": 2, "1.5": 4, "2": 7, "2.5": 10,
		"3": 13, "3.5": 15, "4": 18, "true": 18, "4.5": 21, "5": 24, "6": 32, "7": 39,
		"8": 46, "9": 53, "10": 60, "11": 74, "12": 88, "13": 102, "14": 116,
		"15": 130, "16": 144,
		"-0.25": -0.5, "-0.5": -1, "-1": -2, "-2": -7, "-3": -13, "-4": -18,
	}

	defaultRadius = Scale{
		"0": 0, "1": 3, "2": 5, "3": 7, "4": 9, "true": 9, "5": 10, "6": 16,
		"7": 19, "8": 22, "9": 26, "10": 34, "11": 42, "12": 50,
	}

	defaultZIndex = Scale{
		"0": 0, "1": 100, "2": 200, "3": 300, "4": 400, "5": 500,
	}

	defaultBorderWidth = Scale{
		"0": 0, "0.5": 0.5, "1": 1, "true": 1, "2": 2, "3": 3,
	}
)

// DefaultSize returns a fresh copy of the built-in size scale.
func DefaultSize() Scale { return defaultSize.Clone() }

// DefaultSpace returns a fresh copy of the built-in space scale.
func DefaultSpace() Scale { return defaultSpace.Clone() }

// DefaultRadius returns a fresh copy of the built-in radius scale.
func DefaultRadius() Scale { return defaultRadius.Clone() }

// DefaultZIndex returns a fresh copy of the built-in z-index scale.
func DefaultZIndex() Scale { return defaultZIndex.Clone() }

// DefaultBorderWidth returns a fresh copy of the built-in border-width scale.
func DefaultBorderWidth() Scale { return defaultBorderWidth.Clone() }
