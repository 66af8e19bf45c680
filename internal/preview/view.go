package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the tree list beside the selected theme's details.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.bundle == nil {
		return warningStyle.Render("no bundle loaded")
	}

	title := titleStyle.Render("brandkit • " + m.bundle.Name)

	rows := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		label := strings.Repeat("  ", e.depth) + leafName(e.name, e.depth)
		if i == m.cursor {
			rows = append(rows, selectedItemStyle.Render(label))
			continue
		}
		rows = append(rows, itemStyle.Render(label))
	}
	list := strings.Join(visibleRows(rows, m.cursor, m.height-6), "\n")

	detail := ""
	if selected := m.Selected(); selected != "" {
		detail = detailStyle.Render(sectionStyle.UnsetMarginTop().Render(selected) + "\n" + RenderTheme(m.bundle.Themes, selected))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.fontLine(), helpStyle.Render("↑/↓ move • q quit"))
}

func (m Model) fontLine() string {
	switch {
	case !m.fontState.Loaded:
		return m.spinner.View() + " loading fonts…"
	case m.fontState.Err != nil:
		return warningStyle.Render("⚠ fonts unavailable, using system fonts: " + m.fontState.Err.Error())
	case m.bundle.StylesheetURL == "":
		return labelStyle.Render("system fonts")
	default:
		return loadedStyle.Render("✓ fonts loaded")
	}
}

// leafName strips the parent prefix so nested rows show their own name.
func leafName(name string, depth int) string {
	if depth == 0 {
		return name
	}
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// visibleRows scrolls rows so the cursor stays inside a window of limit rows.
func visibleRows(rows []string, cursor, limit int) []string {
	if limit <= 0 || len(rows) <= limit {
		return rows
	}
	start := cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > len(rows) {
		start = len(rows) - limit
	}
	return rows[start : start+limit]
}
