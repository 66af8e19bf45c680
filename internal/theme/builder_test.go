package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func basePalettes() PaletteSet {
	base := DefaultBase()
	return PaletteSet{SchemeLight: base.Light, SchemeDark: base.Dark}
}

func TestBuilderMissingAccentPaletteFails(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(basePalettes(), DefaultTemplates()).
		AddRoot(Definition{Name: SchemeLight, Template: TemplateBase}, nil).
		AddChildren([]Definition{{Name: "teal", Template: TemplateBase, Palette: "teal"}}, ChildOptions{}).
		Build()

	var cfgErr *apperrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "light_teal", cfgErr.Theme)
	require.Equal(t, "light_teal", cfgErr.Palette)
}

func TestBuilderMissingTemplateFails(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(basePalettes(), DefaultTemplates()).
		AddRoot(Definition{Name: SchemeLight, Template: "glass"}, nil).
		Build()

	var cfgErr *apperrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, cfgErr.Message, "glass")
}

func TestBuilderDuplicateNameFails(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(basePalettes(), DefaultTemplates()).
		AddRoot(Definition{Name: SchemeLight, Template: TemplateBase}, nil).
		AddRoot(Definition{Name: SchemeLight, Template: TemplateBase}, nil).
		Build()
	require.Error(t, err)
}

func TestBuilderEmptyFails(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(basePalettes(), DefaultTemplates()).Build()
	require.Error(t, err)
}

func TestBuilderAvoidNestingWithin(t *testing.T) {
	t.Parallel()

	palettes := basePalettes()
	palettes["light_blue"] = DefaultAccents()[AccentBlue].Light

	surfaces := []Definition{
		{Name: TemplateSurface1, Template: TemplateSurface1},
		{Name: TemplateSurface2, Template: TemplateSurface2},
	}
	b := NewBuilder(palettes, DefaultTemplates()).
		AddRoot(Definition{Name: SchemeLight, Template: TemplateBase}, nil).
		AddChildren([]Definition{{Name: AccentBlue, Template: TemplateBase, Palette: AccentBlue}}, ChildOptions{})
	// Attach surfaces twice with no parent filter: the second pass must not
	// place surfaces beneath the surfaces created by the first.
	b.AddChildren(surfaces, ChildOptions{AvoidNestingWithin: SurfaceNames})
	b.AddChildren([]Definition{{Name: TemplateSurface3, Template: TemplateSurface3}}, ChildOptions{AvoidNestingWithin: SurfaceNames})

	tree, err := b.Build()
	require.NoError(t, err)

	_, ok := tree.Theme("light_blue_surface1")
	require.True(t, ok)
	_, ok = tree.Theme("light_blue_surface3")
	require.True(t, ok)
	_, ok = tree.Theme("light_surface1_surface3")
	require.False(t, ok)
	_, ok = tree.Theme("light_blue_surface2_surface3")
	require.False(t, ok)

	surface, _ := tree.Theme("light_blue_surface1")
	require.Equal(t, "light_blue", surface.Palette, "surface inherits the accent palette")
}

func TestBuilderUnderSelectsParents(t *testing.T) {
	t.Parallel()

	tree, err := NewBuilder(basePalettes(), DefaultTemplates()).
		AddRoot(Definition{Name: SchemeLight, Template: TemplateBase}, nil).
		AddRoot(Definition{Name: SchemeDark, Template: TemplateBase}, nil).
		AddChildren([]Definition{{Name: TemplateInverseSurface, Template: TemplateInverseSurface}}, ChildOptions{Under: []string{SchemeDark}}).
		Build()
	require.NoError(t, err)

	require.Empty(t, tree.Children(SchemeLight))
	require.Equal(t, []string{"dark_inverseSurface"}, tree.Children(SchemeDark))
	require.Equal(t, []string{SchemeDark}, tree.Ancestors("dark_inverseSurface"))
	require.Equal(t, 3, tree.Len())
}
