package blogscan

// Style holds the resolved (post-cascade) style values that decide whether
// an element is rendered.
type Style struct {
	Display    string
	Visibility string
}

// Hidden reports whether the element is not rendered visible.
func (s Style) Hidden() bool {
	return s.Display == "none" || s.Visibility == "hidden"
}

// Element is a node of a rendered DOM snapshot.
//
// Implementations never fail: when a lookup cannot be answered (detached
// node, closed page, malformed markup) they report absence or zero values.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string

	// Attr returns the raw value of an attribute.
	Attr(name string) (string, bool)

	// Style returns the element's own resolved style.
	Style() Style

	// Query returns the first descendant matching the CSS selector.
	Query(selector string) (Element, bool)

	// QueryAll returns all descendants matching the CSS selector in
	// document order.
	QueryAll(selector string) []Element

	// Closest returns the nearest ancestor matching the CSS selector.
	// The element itself is not considered.
	Closest(selector string) (Element, bool)

	// Text returns the concatenated text content, untrimmed.
	Text() string

	// InnerHTML returns the serialized markup of the element's children.
	InnerHTML() string

	// Href returns the resolved absolute href of a link element.
	// Returns an empty string if the element has no href.
	Href() string
}

// Document is the root of a rendered DOM snapshot.
type Document interface {
	// URL returns the address the document was loaded from.
	URL() string

	// QueryAll returns all elements matching the CSS selector in document
	// order.
	QueryAll(selector string) []Element
}
