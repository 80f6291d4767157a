package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogscan"
)

// Ensure Element implements blogscan.Element at compile time.
var _ blogscan.Element = (*Element)(nil)

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
	doc *Document
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the raw value of an attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Style resolves display and visibility from the hidden attribute and
// inline styles. Display applies to the element alone; visibility is
// inherited from the nearest ancestor that sets it. Display is empty when
// nothing in the markup sets it.
func (e *Element) Style() blogscan.Style {
	style := blogscan.Style{Visibility: "visible"}

	if _, ok := e.sel.Attr("hidden"); ok {
		style.Display = "none"
	}
	if v, ok := inlineDeclaration(e.sel, "display"); ok {
		style.Display = v
	}

	for s := e.sel; s.Length() > 0; s = s.Parent() {
		if v, ok := inlineDeclaration(s, "visibility"); ok && v != "inherit" {
			style.Visibility = v
			break
		}
	}

	return style
}

// Query returns the first descendant matching the selector.
func (e *Element) Query(selector string) (blogscan.Element, bool) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{sel: found, doc: e.doc}, true
}

// QueryAll returns all descendants matching the selector in document order.
func (e *Element) QueryAll(selector string) []blogscan.Element {
	return e.doc.wrap(e.sel.Find(selector))
}

// Closest returns the nearest ancestor matching the selector.
func (e *Element) Closest(selector string) (blogscan.Element, bool) {
	found := e.sel.Parent().Closest(selector)
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{sel: found, doc: e.doc}, true
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	return e.sel.Text()
}

// InnerHTML returns the serialized children of the element.
func (e *Element) InnerHTML() string {
	s, err := e.sel.Html()
	if err != nil {
		return ""
	}
	return s
}

// Href returns the href attribute resolved against the document base.
func (e *Element) Href() string {
	href, ok := e.sel.Attr("href")
	if !ok {
		return ""
	}
	return e.doc.resolveURL(href)
}

// inlineDeclaration returns the value of a property in the element's style
// attribute. The last declaration wins, as in CSS.
func inlineDeclaration(sel *goquery.Selection, property string) (string, bool) {
	attr, ok := sel.Attr("style")
	if !ok {
		return "", false
	}

	var value string
	var found bool
	for _, decl := range strings.Split(attr, ";") {
		name, v, ok := strings.Cut(decl, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), property) {
			continue
		}
		v = strings.ToLower(strings.TrimSpace(v))
		v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
		if v == "" {
			continue
		}
		value, found = v, true
	}
	return value, found
}
