package fontloader

import (
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

// MarkerAttr tags stylesheet links created by a Web loader. Its value is the
// creating instance's id.
const MarkerAttr = "data-brandkit-font"

// Web links the synthesized stylesheet into an HTML document. Loaders sharing
// a document converge on one link per URL. The document is not safe for
// concurrent mutation; callers serialize access across loaders.
type Web struct {
	doc        *html.Node
	id         string
	serviceURL string
}

// NewWeb returns a loader bound to a parsed document (see html.Parse).
func NewWeb(doc *html.Node) *Web {
	return &Web{
		doc:        doc,
		id:         uuid.NewString(),
		serviceURL: fonts.DefaultServiceURL,
	}
}

// WithServiceURL points synthesized URLs at an alternate font-CSS host.
func (w *Web) WithServiceURL(base string) *Web {
	if base != "" {
		w.serviceURL = base
	}
	return w
}

// ID returns the marker value this instance writes on links it creates.
func (w *Web) ID() string {
	return w.id
}

// Load ensures the stylesheet for cfg is linked and returns {Loaded: true}
// synchronously. The returned Release removes the link only while it still
// carries this instance's marker.
func (w *Web) Load(cfg *fonts.Config) (State, Release) {
	loaded := State{Loaded: true}

	url := fonts.BuildStylesheetURLWithBase(w.serviceURL, cfg)
	if url == "" || w.doc == nil {
		return loaded, noRelease
	}

	if findStylesheet(w.doc, url) != nil {
		return loaded, noRelease
	}

	head := ensureHead(w.doc)
	if head == nil {
		return loaded, noRelease
	}

	link := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     "link",
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: url},
			{Key: MarkerAttr, Val: w.id},
		},
	}
	head.AppendChild(link)

	var once sync.Once
	return loaded, func() {
		once.Do(func() {
			if attr(link, MarkerAttr) == w.id && link.Parent != nil {
				link.Parent.RemoveChild(link)
			}
		})
	}
}

// Render writes the document back out as HTML.
func (w *Web) Render(out io.Writer) error {
	return html.Render(out, w.doc)
}

func findStylesheet(n *html.Node, href string) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Link &&
		attr(n, "href") == href && isStylesheet(attr(n, "rel")) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findStylesheet(c, href); found != nil {
			return found
		}
	}
	return nil
}

func isStylesheet(rel string) bool {
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "stylesheet") {
			return true
		}
	}
	return false
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// ensureHead returns the document's <head>, creating one under <html> when a
// hand-built tree lacks it.
func ensureHead(doc *html.Node) *html.Node {
	if head := findElement(doc, atom.Head); head != nil {
		return head
	}
	root := findElement(doc, atom.Html)
	if root == nil {
		return nil
	}
	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	root.InsertBefore(head, root.FirstChild)
	return head
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
