package page

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed skeleton.html
var skeleton string

// Document is a parsed HTML page. It plays the role of the browser DOM:
// containers are looked up by class and their children replaced in place.
type Document struct {
	Root *html.Node
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse: %w", err)
	}
	return &Document{Root: root}, nil
}

// ParseFile reads the page template at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("page: open template: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns a fresh copy of the built-in page skeleton.
func Default() *Document {
	doc, err := Parse(strings.NewReader(skeleton))
	if err != nil {
		panic(err)
	}
	return doc
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// FindAll returns every element matching fn in document order.
func (d *Document) FindAll(fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && fn(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// Find returns the first element matching fn, or nil.
func (d *Document) Find(fn func(*html.Node) bool) *html.Node {
	if all := d.FindAll(fn); len(all) > 0 {
		return all[0]
	}
	return nil
}

// FindByClass is the equivalent of querySelector(".class").
func (d *Document) FindByClass(class string) *html.Node {
	return d.Find(func(n *html.Node) bool { return HasClass(n, class) })
}

// FindAllByClass is the equivalent of querySelectorAll(".class").
func (d *Document) FindAllByClass(class string) []*html.Node {
	return d.FindAll(func(n *html.Node) bool { return HasClass(n, class) })
}

func (d *Document) FindByID(id string) *html.Node {
	return d.Find(func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// FindByTag returns every element with the given tag name.
func (d *Document) FindByTag(tag atom.Atom) []*html.Node {
	return d.FindAll(func(n *html.Node) bool { return n.DataAtom == tag })
}

// Body returns the <body> element. Parsed documents always have one.
func (d *Document) Body() *html.Node {
	if b := d.FindByTag(atom.Body); len(b) > 0 {
		return b[0]
	}
	return nil
}
