package theme

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Definition names the template and palette a theme is built from. An empty
// Palette on a child inherits the parent's palette.
type Definition struct {
	Name     string
	Template string
	Palette  string
}

// ChildOptions selects where a group of children is attached.
type ChildOptions struct {
	// Under limits parents to themes whose own (leaf) name is listed. Empty
	// means every theme registered so far.
	Under []string
	// AvoidNestingWithin skips any parent that is, or descends from, a theme
	// whose leaf name is listed.
	AvoidNestingWithin []string
}

type node struct {
	name     string
	leaf     string
	parent   *node
	scheme   string
	def      Definition
	nonInher map[string]string
}

// Builder assembles a theme tree from palettes and templates. Errors are
// deferred to Build.
type Builder struct {
	palettes  PaletteSet
	templates map[string]Template
	nodes     []*node
	byName    map[string]*node
	err       error
}

// NewBuilder creates a Builder over the given palettes and templates.
func NewBuilder(palettes PaletteSet, templates map[string]Template) *Builder {
	return &Builder{
		palettes:  palettes,
		templates: templates,
		byName:    make(map[string]*node),
	}
}

// AddRoot registers a root theme. The root's name is also its scheme, used
// to resolve child palettes as "<scheme>_<palette>".
func (b *Builder) AddRoot(def Definition, nonInherited map[string]string) *Builder {
	if b.err != nil {
		return b
	}
	if def.Palette == "" {
		def.Palette = def.Name
	}
	b.add(&node{
		name:     def.Name,
		leaf:     def.Name,
		scheme:   def.Name,
		def:      def,
		nonInher: copyStrings(nonInherited),
	})
	return b
}

// AddChildren attaches every definition under each parent selected by opts.
func (b *Builder) AddChildren(defs []Definition, opts ChildOptions) *Builder {
	if b.err != nil {
		return b
	}
	under := toSet(opts.Under)
	avoid := toSet(opts.AvoidNestingWithin)

	parents := make([]*node, 0, len(b.nodes))
	for _, n := range b.nodes {
		if len(under) > 0 {
			if _, ok := under[n.leaf]; !ok {
				continue
			}
		}
		if nestsWithin(n, avoid) {
			continue
		}
		parents = append(parents, n)
	}

	for _, parent := range parents {
		for _, def := range defs {
			b.add(&node{
				name:   childName(parent.name, def.Name),
				leaf:   def.Name,
				parent: parent,
				scheme: parent.scheme,
				def:    def,
			})
			if b.err != nil {
				return b
			}
		}
	}
	return b
}

func (b *Builder) add(n *node) {
	if _, exists := b.byName[n.name]; exists {
		b.err = apperrors.NewConfigError(n.name, "", "duplicate theme name")
		return
	}
	b.byName[n.name] = n
	b.nodes = append(b.nodes, n)
}

// Build resolves every registered theme against its template and palette.
func (b *Builder) Build() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.nodes) == 0 {
		return nil, apperrors.NewConfigError("", "", "no themes registered")
	}

	tree := &Tree{
		order:    make([]string, 0, len(b.nodes)),
		themes:   make(map[string]Theme, len(b.nodes)),
		children: make(map[string][]string),
	}

	for _, n := range b.nodes {
		tmpl, ok := b.templates[n.def.Template]
		if !ok {
			return nil, apperrors.NewConfigError(n.name, "", fmt.Sprintf("template %q not found", n.def.Template))
		}
		paletteName, palette, err := b.resolvePalette(n)
		if err != nil {
			return nil, err
		}
		values, err := applyTemplate(n.name, paletteName, tmpl, palette)
		if err != nil {
			return nil, err
		}

		th := Theme{
			Name:         n.name,
			Template:     n.def.Template,
			Palette:      paletteName,
			Values:       values,
			NonInherited: n.nonInher,
		}
		if n.parent != nil {
			th.Parent = n.parent.name
			tree.children[n.parent.name] = append(tree.children[n.parent.name], n.name)
		}
		tree.order = append(tree.order, n.name)
		tree.themes[n.name] = th
	}
	return tree, nil
}

// resolvePalette finds a node's palette: inherited when unset, otherwise
// "<scheme>_<palette>" first and the bare name second.
func (b *Builder) resolvePalette(n *node) (string, Palette, error) {
	if n.def.Palette == "" {
		if n.parent == nil {
			return "", nil, apperrors.NewConfigError(n.name, "", "root theme has no palette")
		}
		return b.resolvePalette(n.parent)
	}
	candidates := []string{n.def.Palette}
	if n.parent != nil {
		candidates = []string{n.scheme + "_" + n.def.Palette, n.def.Palette}
	}
	for _, name := range candidates {
		if p, ok := b.palettes[name]; ok {
			return name, p, nil
		}
	}
	return "", nil, apperrors.NewConfigError(n.name, candidates[0], "palette not found")
}

func applyTemplate(themeName, paletteName string, tmpl Template, palette Palette) (map[string]string, error) {
	if len(palette) != PaletteStops {
		return nil, apperrors.NewConfigError(themeName, paletteName,
			fmt.Sprintf("palette has %d stops, want %d", len(palette), PaletteStops))
	}
	values := make(map[string]string, len(tmpl))
	for role, idx := range tmpl {
		if idx < 0 || idx >= len(palette) {
			return nil, apperrors.NewConfigError(themeName, paletteName,
				fmt.Sprintf("role %s references stop %d", role, idx))
		}
		values[role] = palette[idx]
	}
	return values, nil
}

func nestsWithin(n *node, avoid map[string]struct{}) bool {
	if len(avoid) == 0 {
		return false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if _, ok := avoid[cur.leaf]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
