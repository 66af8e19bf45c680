package typography

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

func sampleConfig() *fonts.Config {
	return &fonts.Config{
		Heading: fonts.HeadingFont{Family: "Playfair Display", Fallback: "serif", HeavyWeight: 700, LightWeight: 300},
		Body:    fonts.FontFace{Family: "Inter", Fallback: "sans-serif", Weight: 400},
		Mono:    fonts.FontFace{Family: "Menlo", Weight: 500},
		Quote:   fonts.QuoteFont{Family: "Lora", Weight: 400},
	}
}

func TestHeadingWeightAlternation(t *testing.T) {
	t.Parallel()

	set := Resolve(sampleConfig(), nil, nil, PlatformWeb)

	var got []string
	for _, step := range []string{"1", "2", "3", "4", "5", "6"} {
		got = append(got, set.Heading.Weight[step])
	}
	require.Equal(t, []string{"300", "700", "300", "700", "300", "700"}, got)
	require.Equal(t, "h1", HeadingNames[set.Heading.Steps()[5]])
}

func TestFamilyStringsAndRepeatedWeights(t *testing.T) {
	t.Parallel()

	set := Resolve(sampleConfig(), nil, nil, PlatformWeb)

	require.Equal(t, "Playfair Display, serif", set.Heading.Family)
	require.Equal(t, "Inter, sans-serif", set.Body.Family)
	require.Equal(t, "Menlo", set.Mono.Family)

	require.Len(t, set.Mono.Weight, len(set.Mono.Size))
	for step := range set.Mono.Size {
		require.Equal(t, "500", set.Mono.Weight[step])
		require.Equal(t, "400", set.Body.Weight[step])
		require.Equal(t, "italic", set.Quote.Style[step])
	}
}

func TestQuoteStyleNormal(t *testing.T) {
	t.Parallel()

	cfg := sampleConfig()
	cfg.Quote.Style = fonts.StyleNormal
	set := Resolve(cfg, nil, nil, PlatformWeb)

	for _, style := range set.Quote.Style {
		require.Equal(t, "normal", style)
	}
}

func TestFaceMapNativeOnly(t *testing.T) {
	t.Parallel()

	web := Resolve(sampleConfig(), nil, nil, PlatformWeb)
	require.Empty(t, web.Heading.Face)
	require.NotNil(t, web.Heading.Face)

	native := Resolve(sampleConfig(), nil, nil, PlatformNative)
	require.Equal(t, map[string]FaceVariant{
		"700": {Normal: "Playfair_Display_700_normal"},
		"300": {Normal: "Playfair_Display_300_normal"},
	}, native.Heading.Face)
	require.Equal(t, map[string]FaceVariant{
		"400": {Normal: "Lora_400_normal", Italic: "Lora_400_italic"},
	}, native.Quote.Face)
	require.Empty(t, native.Mono.Face, "system families are never loaded")
}

func TestDefaultsWithoutConfig(t *testing.T) {
	t.Parallel()

	set := Resolve(nil, nil, nil, PlatformNative)
	require.Equal(t, Defaults(), set)
	require.Equal(t, "400", set.Heading.Weight["1"])
	require.Equal(t, "700", set.Heading.Weight["6"])
}

func TestFlagsStampEveryStep(t *testing.T) {
	t.Parallel()

	set := Resolve(sampleConfig(), &Flags{HeadingTransform: "uppercase", HeadingStyle: "italic", BodyTransform: "lowercase"}, nil, PlatformWeb)

	require.Len(t, set.Heading.Transform, 6)
	for step := range set.Heading.Size {
		require.Equal(t, "uppercase", set.Heading.Transform[step])
		require.Equal(t, "italic", set.Heading.Style[step])
	}
	for step := range set.Body.Size {
		require.Equal(t, "lowercase", set.Body.Transform[step])
	}
	require.Nil(t, set.Mono.Transform)
}

func TestOverridesWinOverFlagsAndConfig(t *testing.T) {
	t.Parallel()

	family := "Custom Grotesk"
	overrides := map[fonts.Slot]Override{
		fonts.SlotHeading: {
			Family:    &family,
			Transform: map[string]string{"6": "none"},
		},
		fonts.SlotBody: {
			Size: map[string]float64{"1": 10, "2": 12},
		},
	}

	set := Resolve(sampleConfig(), &Flags{HeadingTransform: "uppercase"}, overrides, PlatformWeb)

	require.Equal(t, "Custom Grotesk", set.Heading.Family)
	require.Equal(t, map[string]string{"6": "none"}, set.Heading.Transform)
	require.Equal(t, map[string]float64{"1": 10, "2": 12}, set.Body.Size)
	require.Equal(t, "300", set.Heading.Weight["1"], "fields not overridden are kept")
}

func TestOverridesApplyOntoDefaults(t *testing.T) {
	t.Parallel()

	family := "Fira Code"
	set := Resolve(nil, nil, map[fonts.Slot]Override{fonts.SlotMono: {Family: &family}}, PlatformWeb)

	require.Equal(t, "Fira Code", set.Mono.Family)
	require.Equal(t, Defaults().Mono.Size, set.Mono.Size)
}

func TestResolveDoesNotShareMaps(t *testing.T) {
	t.Parallel()

	a := Resolve(sampleConfig(), nil, nil, PlatformWeb)
	a.Body.Size["1"] = 999

	b := Resolve(sampleConfig(), nil, nil, PlatformWeb)
	require.Equal(t, float64(11), b.Body.Size["1"])
}

func TestSetGet(t *testing.T) {
	t.Parallel()

	set := Defaults()
	require.Equal(t, set.Quote, set.Get(fonts.SlotQuote))
	require.Equal(t, set.Mono, set.Get(fonts.SlotMono))
}
