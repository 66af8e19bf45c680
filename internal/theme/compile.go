// Package theme compiles brand palettes into a parent/child theme tree: two
// roots (light, dark), one accent child per accent under both roots, and the
// surface elevation children.
package theme

import (
	"sort"
)

// Input is everything the tree builder needs from a brand.
type Input struct {
	Base    Pair
	Accents map[string]Pair
	Shadows *Shadows
}

// AccentNames returns the default accent names followed by any brand-only
// accents in sorted order.
func AccentNames(brandAccents map[string]Pair) []string {
	names := append([]string(nil), DefaultAccentNames...)
	known := toSet(DefaultAccentNames)
	var extra []string
	for name := range brandAccents {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Palettes flattens the base and accent pairs into a PaletteSet. Brand
// accents replace defaults of the same name; other defaults remain.
func Palettes(in Input) PaletteSet {
	set := PaletteSet{
		SchemeLight: in.Base.Light,
		SchemeDark:  in.Base.Dark,
	}
	accents := DefaultAccents()
	for name, pair := range in.Accents {
		accents[name] = pair
	}
	for name, pair := range accents {
		set[SchemeLight+"_"+name] = pair.Light
		set[SchemeDark+"_"+name] = pair.Dark
	}
	return set
}

// RootValues returns the non-inherited shadow variables for a scheme, using
// the brand's scale for that scheme when given and the default otherwise.
func RootValues(scheme string, shadows *Shadows) map[string]string {
	scale := DefaultShadows(scheme)
	if shadows != nil {
		switch scheme {
		case SchemeLight:
			if shadows.Light != nil {
				scale = shadows.Light
			}
		case SchemeDark:
			if shadows.Dark != nil {
				scale = shadows.Dark
			}
		}
	}
	return ShadowScaleToThemeValues(scale)
}

// Compile builds the full brand theme tree.
func Compile(in Input) (*Tree, error) {
	roots := []string{SchemeLight, SchemeDark}

	surfaces := []Definition{
		{Name: TemplateAlt1, Template: TemplateAlt1},
		{Name: TemplateAlt2, Template: TemplateAlt2},
		{Name: TemplateSurface1, Template: TemplateSurface1},
		{Name: TemplateSurface2, Template: TemplateSurface2},
		{Name: TemplateSurface3, Template: TemplateSurface3},
		{Name: TemplateInverseSurface, Template: TemplateInverseSurface},
	}

	names := AccentNames(in.Accents)
	accents := make([]Definition, 0, len(names))
	for _, name := range names {
		accents = append(accents, Definition{Name: name, Template: TemplateBase, Palette: name})
	}

	b := NewBuilder(Palettes(in), DefaultTemplates())
	for _, scheme := range roots {
		b.AddRoot(Definition{Name: scheme, Template: TemplateBase}, RootValues(scheme, in.Shadows))
	}
	b.AddChildren(accents, ChildOptions{Under: roots})
	b.AddChildren(surfaces, ChildOptions{Under: roots, AvoidNestingWithin: SurfaceNames})

	return b.Build()
}
