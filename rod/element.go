package rod

import (
	"strings"

	"github.com/fwojciec/blogscan"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// Ensure the live DOM types implement the blogscan interfaces.
var (
	_ blogscan.Snapshot = (*Snapshot)(nil)
	_ blogscan.Element  = (*Element)(nil)
)

// Snapshot is a settled browser page. Queries run against the live DOM.
type Snapshot struct {
	page    *rod.Page
	url     string
	manager *BrowserManager
}

// URL returns the address the page was loaded from.
func (s *Snapshot) URL() string {
	return s.url
}

// QueryAll returns all elements matching the selector in document order.
func (s *Snapshot) QueryAll(selector string) []blogscan.Element {
	elems, err := s.page.Elements(selector)
	if err != nil {
		return nil
	}
	return wrap(elems)
}

// Close closes the page.
func (s *Snapshot) Close() error {
	return s.manager.Release(s.page)
}

// Element is a node of a live page. Failed lookups report absence.
type Element struct {
	el *rod.Element
}

// computedStyleJS reads the resolved style of the element.
const computedStyleJS = `() => {
	const s = window.getComputedStyle(this);
	return { display: s.display, visibility: s.visibility };
}`

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return strings.ToLower(e.property("tagName"))
}

// Attr returns the raw attribute value as written in the markup.
func (e *Element) Attr(name string) (string, bool) {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return "", false
	}
	return *v, true
}

// Style returns the computed display and visibility. An element whose
// style cannot be read counts as visible.
func (e *Element) Style() blogscan.Style {
	return styleOf(e.el.Eval(computedStyleJS))
}

func styleOf(res *proto.RuntimeRemoteObject, err error) blogscan.Style {
	if err != nil || res == nil {
		return blogscan.Style{}
	}
	return blogscan.Style{
		Display:    stringOf(res.Value.Get("display"), nil),
		Visibility: stringOf(res.Value.Get("visibility"), nil),
	}
}

// Query returns the first descendant matching the selector.
func (e *Element) Query(selector string) (blogscan.Element, bool) {
	ok, el, err := e.el.Has(selector)
	if err != nil || !ok {
		return nil, false
	}
	return &Element{el: el}, true
}

// QueryAll returns all descendants matching the selector in document order.
func (e *Element) QueryAll(selector string) []blogscan.Element {
	elems, err := e.el.Elements(selector)
	if err != nil {
		return nil
	}
	return wrap(elems)
}

// Closest returns the nearest matching ancestor.
func (e *Element) Closest(selector string) (blogscan.Element, bool) {
	parents, err := e.el.Parents(selector)
	if err != nil || parents.Empty() {
		return nil, false
	}
	return &Element{el: parents.First()}, true
}

// Text returns the textContent of the element.
func (e *Element) Text() string {
	return e.property("textContent")
}

// InnerHTML returns the serialized markup of the element's children.
func (e *Element) InnerHTML() string {
	return e.property("innerHTML")
}

// Href returns the href property, which the browser has already resolved
// against the document base.
// Elements without an href property fall back to the raw attribute.
func (e *Element) Href() string {
	raw, ok := e.Attr("href")
	if !ok {
		return ""
	}
	if href := e.property("href"); href != "" {
		return href
	}
	return raw
}

func (e *Element) property(name string) string {
	return stringOf(e.el.Property(name))
}

// stringOf converts a JS value to a string, mapping errors, null and
// undefined to "".
func stringOf(v gson.JSON, err error) string {
	if err != nil || v.Nil() {
		return ""
	}
	return v.Str()
}

func wrap(elems rod.Elements) []blogscan.Element {
	if len(elems) == 0 {
		return nil
	}
	out := make([]blogscan.Element, len(elems))
	for i, el := range elems {
		out[i] = &Element{el: el}
	}
	return out
}
