// Package typography resolves the four typefaces (heading, body, mono,
// quote) a brand compiles to.
package typography

import (
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

// Platform selects platform-specific font output.
type Platform string

const (
	PlatformWeb    Platform = "web"
	PlatformNative Platform = "native"
)

// FaceVariant maps a style to the loaded-font key for one weight.
type FaceVariant struct {
	Normal string `json:"normal"`
	Italic string `json:"italic,omitempty"`
}

// Typeface is one resolved typeface.
type Typeface struct {
	Family        string                 `json:"family"`
	Size          map[string]float64     `json:"size"`
	LineHeight    map[string]float64     `json:"lineHeight"`
	LetterSpacing map[string]float64     `json:"letterSpacing"`
	Weight        map[string]string      `json:"weight"`
	Style         map[string]string      `json:"style,omitempty"`
	Transform     map[string]string      `json:"transform,omitempty"`
	Face          map[string]FaceVariant `json:"face,omitempty"`
}

// Steps returns the typeface's size steps in ascending numeric order.
func (t Typeface) Steps() []string {
	return sortedSteps(t.Size)
}

func (t Typeface) clone() Typeface {
	return Typeface{
		Family:        t.Family,
		Size:          cloneFloats(t.Size),
		LineHeight:    cloneFloats(t.LineHeight),
		LetterSpacing: cloneFloats(t.LetterSpacing),
		Weight:        cloneStrings(t.Weight),
		Style:         cloneStrings(t.Style),
		Transform:     cloneStrings(t.Transform),
		Face:          cloneFaces(t.Face),
	}
}

// Set holds the four resolved typefaces.
type Set struct {
	Heading Typeface `json:"heading"`
	Body    Typeface `json:"body"`
	Mono    Typeface `json:"mono"`
	Quote   Typeface `json:"quote"`
}

// Get returns the typeface for slot.
func (s Set) Get(slot fonts.Slot) Typeface {
	switch slot {
	case fonts.SlotHeading:
		return s.Heading
	case fonts.SlotMono:
		return s.Mono
	case fonts.SlotQuote:
		return s.Quote
	default:
		return s.Body
	}
}

func (s *Set) slot(slot fonts.Slot) *Typeface {
	switch slot {
	case fonts.SlotHeading:
		return &s.Heading
	case fonts.SlotMono:
		return &s.Mono
	case fonts.SlotQuote:
		return &s.Quote
	default:
		return &s.Body
	}
}

// HeadingNames maps heading steps 1..6 (smallest to largest) to element names.
var HeadingNames = map[string]string{
	"1": "h6", "2": "h5", "3": "h4", "4": "h3", "5": "h2", "6": "h1",
}

func sortedSteps[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseFloat(keys[i], 64)
		b, errB := strconv.ParseFloat(keys[j], 64)
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

func cloneFloats(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneFaces(m map[string]FaceVariant) map[string]FaceVariant {
	if m == nil {
		return nil
	}
	out := make(map[string]FaceVariant, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
