package theme

import "encoding/json"

// Theme is one compiled node. Values come from applying the template to
// the palette; NonInherited is set on roots only and does not cascade.
type Theme struct {
	Name         string            `json:"-"`
	Parent       string            `json:"parent,omitempty"`
	Template     string            `json:"template"`
	Palette      string            `json:"palette"`
	Values       map[string]string `json:"values"`
	NonInherited map[string]string `json:"nonInherited,omitempty"`
}

// Value returns the resolved value for role, checking non-inherited values first.
func (t Theme) Value(role string) (string, bool) {
	if v, ok := t.NonInherited[role]; ok {
		return v, true
	}
	v, ok := t.Values[role]
	return v, ok
}

func (t Theme) clone() Theme {
	out := t
	out.Values = copyStrings(t.Values)
	out.NonInherited = copyStrings(t.NonInherited)
	return out
}

// Tree is an immutable compiled theme tree.
type Tree struct {
	order    []string
	themes   map[string]Theme
	children map[string][]string
}

// Names returns every theme name in registration order.
func (t *Tree) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of themes in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Theme returns a copy of the named theme.
func (t *Tree) Theme(name string) (Theme, bool) {
	th, ok := t.themes[name]
	if !ok {
		return Theme{}, false
	}
	return th.clone(), true
}

// Roots returns the names of themes without a parent.
func (t *Tree) Roots() []string {
	var roots []string
	for _, name := range t.order {
		if t.themes[name].Parent == "" {
			roots = append(roots, name)
		}
	}
	return roots
}

// Children returns the direct children of name in registration order.
func (t *Tree) Children(name string) []string {
	return append([]string(nil), t.children[name]...)
}

// Lookup resolves child relative to parent, e.g. Lookup("dark", "coral").
func (t *Tree) Lookup(parent, child string) (Theme, bool) {
	return t.Theme(childName(parent, child))
}

// Ancestors returns name's ancestors from its parent up to the root.
func (t *Tree) Ancestors(name string) []string {
	var out []string
	for {
		th, ok := t.themes[name]
		if !ok || th.Parent == "" {
			return out
		}
		out = append(out, th.Parent)
		name = th.Parent
	}
}

// MarshalJSON flattens the tree into name -> theme.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.themes)
}

func childName(parent, child string) string {
	return parent + "_" + child
}

func copyStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
