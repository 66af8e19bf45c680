package preview

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/brandkit/internal/compiler"
	"github.com/alexisbeaulieu97/brandkit/internal/fontloader"
)

// FontsLoadedMsg reports the terminal state of the native font loader.
type FontsLoadedMsg struct {
	State fontloader.State
}

// FontWaiter is the part of the native loader the browser observes.
type FontWaiter interface {
	Done() <-chan struct{}
	State() fontloader.State
}

// entry is one row of the flattened theme tree.
type entry struct {
	name  string
	depth int
}

// Model is the Bubbletea state for the theme browser.
type Model struct {
	bundle  *compiler.Bundle
	entries []entry
	cursor  int

	fonts     FontWaiter
	fontState fontloader.State
	spinner   spinner.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds a browser over bundle. fonts may be nil when no native
// font load is running.
func NewModel(bundle *compiler.Bundle, fonts FontWaiter) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		bundle:    bundle,
		entries:   flatten(bundle),
		fonts:     fonts,
		fontState: fontloader.State{Loaded: true},
		spinner:   s,
		width:     80,
		height:    24,
	}
	if fonts != nil {
		m.fontState = fonts.State()
	}
	return m
}

// Init starts the spinner and the font wait when fonts are still loading.
func (m Model) Init() tea.Cmd {
	if m.fontState.Loaded {
		return nil
	}
	return tea.Batch(m.spinner.Tick, waitFontsCmd(m.fonts))
}

// Selected returns the name of the highlighted theme.
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return ""
	}
	return m.entries[m.cursor].name
}

// FontState returns the last observed font loader state.
func (m Model) FontState() fontloader.State {
	return m.fontState
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.entries)) % len(m.entries)
}

// flatten lists the tree depth-first from each root.
func flatten(bundle *compiler.Bundle) []entry {
	if bundle == nil || bundle.Themes == nil {
		return nil
	}
	var out []entry
	var walk func(name string, depth int)
	walk = func(name string, depth int) {
		out = append(out, entry{name: name, depth: depth})
		for _, child := range bundle.Themes.Children(name) {
			walk(child, depth+1)
		}
	}
	for _, root := range bundle.Themes.Roots() {
		walk(root, 0)
	}
	return out
}

func waitFontsCmd(fonts FontWaiter) tea.Cmd {
	return func() tea.Msg {
		<-fonts.Done()
		return FontsLoadedMsg{State: fonts.State()}
	}
}
