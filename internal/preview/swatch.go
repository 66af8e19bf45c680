// Package preview renders compiled brands in the terminal: palette swatches,
// per-theme role tables and an interactive theme tree browser.
package preview

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/brandkit/internal/compiler"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
)

const swatchWidth = 4

// Roles shown in a theme's detail table, in display order.
var detailRoles = []string{
	theme.RoleBackground,
	theme.RoleBackgroundHover,
	theme.RoleBackgroundStrong,
	theme.RoleColor,
	theme.RoleColorSubtitle,
	theme.RoleBorderColor,
	theme.RoleOutlineColor,
	theme.RolePlaceholderColor,
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors.
func ContrastRatio(fg, bg string) (float64, error) {
	a, err := colorful.Hex(fg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", fg, err)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", bg, err)
	}
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Readable returns black or white, whichever contrasts more with bg.
func Readable(bg string) string {
	black, errBlack := ContrastRatio("#000000", bg)
	white, errWhite := ContrastRatio("#ffffff", bg)
	if errBlack != nil || errWhite != nil || black >= white {
		return "#000000"
	}
	return "#ffffff"
}

// Swatch renders a colored block. Values that are not hex colors (e.g.
// rgba shadow colors) are rendered as plain text.
func Swatch(value string) string {
	if _, err := colorful.Hex(value); err != nil {
		return value
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(value)).
		Foreground(lipgloss.Color(Readable(value))).
		Render(strings.Repeat(" ", swatchWidth))
}

// RenderPalette renders the stops of a palette side by side.
func RenderPalette(p theme.Palette) string {
	blocks := make([]string, 0, len(p))
	for _, stop := range p {
		blocks = append(blocks, Swatch(stop))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// RenderTheme renders the palette row and a role table for one theme.
func RenderTheme(tree *theme.Tree, name string) string {
	th, ok := tree.Theme(name)
	if !ok {
		return warningStyle.Render("unknown theme " + name)
	}

	lines := []string{
		labelStyle.Render("template") + " " + th.Template + "  " + labelStyle.Render("palette") + " " + th.Palette,
	}

	palette := make(theme.Palette, theme.PaletteStops)
	for i := range palette {
		palette[i], _ = th.Value(fmt.Sprintf("color%d", i+1))
	}
	lines = append(lines, RenderPalette(palette))

	for _, role := range detailRoles {
		value, ok := th.Value(role)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %-18s %s", Swatch(value), role, value))
	}

	if fg, okFg := th.Value(theme.RoleColor); okFg {
		if bg, okBg := th.Value(theme.RoleBackground); okBg {
			if ratio, err := ContrastRatio(fg, bg); err == nil {
				lines = append(lines, labelStyle.Render(fmt.Sprintf("contrast %.2f:1", math.Round(ratio*100)/100)))
			}
		}
	}

	for _, key := range sortedKeys(th.NonInherited) {
		lines = append(lines, labelStyle.Render(key)+" "+th.NonInherited[key])
	}

	return strings.Join(lines, "\n")
}

// Render produces a non-interactive overview: every root theme with its
// children listed beneath.
func Render(bundle *compiler.Bundle) string {
	sections := []string{titleStyle.Render("brandkit • " + bundle.Name)}
	for _, root := range bundle.Themes.Roots() {
		sections = append(sections, sectionStyle.Render(root))
		sections = append(sections, RenderTheme(bundle.Themes, root))
		children := bundle.Themes.Children(root)
		if len(children) > 0 {
			sections = append(sections, labelStyle.Render("children: "+strings.Join(children, ", ")))
		}
	}
	if bundle.StylesheetURL != "" {
		sections = append(sections, sectionStyle.Render("fonts"), bundle.StylesheetURL)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
