package analyze

import "github.com/fwojciec/blogscan"

// specificSelectors find likely article links and containers. All are
// applied, in order, and their matches unioned.
var specificSelectors = []string{
	`a[href*="/"]`,
	`[class*="article"]`,
	`[class*="post"]`,
	`[class*="blog"]`,
	"main a",
	"article a",
}

// genericSelectors are used only when no specific selector matched.
var genericSelectors = []string{
	"article",
	`[class*="article"]`,
	`[class*="post"]`,
	`[class*="entry"]`,
	".blog-post",
	".blog-entry",
}

// Discover returns the visible candidate elements of doc in encounter
// order. An element matched by several selectors appears once per match.
func Discover(doc blogscan.Document) []blogscan.Element {
	if elems := discover(doc, specificSelectors); len(elems) > 0 {
		return elems
	}
	return discover(doc, genericSelectors)
}

func discover(doc blogscan.Document, selectors []string) []blogscan.Element {
	var elems []blogscan.Element
	for _, selector := range selectors {
		for _, el := range doc.QueryAll(selector) {
			if visible(el) {
				elems = append(elems, el)
			}
		}
	}
	return elems
}

// visible reports whether the element's own resolved style renders it.
//
// Ancestors are not consulted: an element inside a display:none container
// passes as long as its own computed style is visible.
func visible(el blogscan.Element) bool {
	return !el.Style().Hidden()
}
