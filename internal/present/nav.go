package present

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Vikawood123/web.resume/internal/page"
)

const (
	NavLinkClass = "nav-link"
	ActiveClass  = "active"

	// HeaderOffset is subtracted from a section's top when scrolling to it.
	HeaderOffset = 80
	// ActivationMargin is how far above a section the scroll position may be
	// and still count as inside it.
	ActivationMargin = 100
	// SectionSpacing is the estimated distance between section tops in a
	// built page, which has no real layout.
	SectionSpacing = 600
)

// Section is a page section and its vertical offset.
type Section struct {
	ID  string
	Top float64
}

// ScrollTarget is where smooth-scrolling to a section should stop.
func ScrollTarget(sectionTop float64) float64 {
	return sectionTop - HeaderOffset
}

// ActiveSection returns the id of the last section (in document order)
// whose top is within ActivationMargin of scrollY, or "" if none.
func ActiveSection(sections []Section, scrollY float64) string {
	current := ""
	for _, s := range sections {
		if scrollY >= s.Top-ActivationMargin {
			current = s.ID
		}
	}
	return current
}

// Layout places the document's sections top to bottom, spacing apart,
// starting at 0.
func Layout(doc *page.Document, spacing float64) []Section {
	ids := SectionIDs(doc)
	out := make([]Section, len(ids))
	for i, id := range ids {
		out[i] = Section{ID: id, Top: float64(i) * spacing}
	}
	return out
}

// InitialSection is the section active right after the page opens: at the
// top, or scrolled to anchor when it names a section. ok is false when
// anchor is set but matches nothing.
func InitialSection(sections []Section, anchor string) (id string, ok bool) {
	scrollY := 0.0
	ok = anchor == ""
	for _, s := range sections {
		if s.ID == anchor {
			scrollY, ok = ScrollTarget(s.Top), true
			break
		}
	}
	return ActiveSection(sections, scrollY), ok
}

// MarkActive clears the active class from every nav link and sets it on
// the one pointing at #id.
func MarkActive(doc *page.Document, id string) {
	for _, link := range doc.FindAllByClass(NavLinkClass) {
		page.RemoveClass(link, ActiveClass)
		if href, _ := page.Attr(link, "href"); id != "" && href == "#"+id {
			page.AddClass(link, ActiveClass)
		}
	}
}

// SectionIDs lists the ids of every <section> in document order.
func SectionIDs(doc *page.Document) []string {
	var out []string
	for _, n := range doc.FindAll(func(n *html.Node) bool { return n.Data == "section" }) {
		if id, ok := page.Attr(n, "id"); ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

// DanglingAnchors returns in-page hrefs ("#x") whose target does not exist.
// A bare "#" is ignored.
func DanglingAnchors(doc *page.Document) []string {
	var out []string
	for _, a := range doc.FindAll(func(n *html.Node) bool { return n.Data == "a" }) {
		href, _ := page.Attr(a, "href")
		if !strings.HasPrefix(href, "#") || href == "#" {
			continue
		}
		if doc.FindByID(strings.TrimPrefix(href, "#")) == nil {
			out = append(out, href)
		}
	}
	return out
}
