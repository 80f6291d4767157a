package analyze

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/blogscan"
)

// Signal weights.
const (
	WeightYearLink        = 5
	WeightBlogLink        = 5
	WeightHeadingChild    = 3
	WeightSubstantialText = 2
	WeightSemanticTag     = 3
	WeightDateMarkup      = 2
	WeightImage           = 1
)

// substantialTextLen is the text length above which an element counts as
// carrying real content. Lengths are counted in runes, so text outside the
// Basic Multilingual Plane counts one per character rather than two.
const substantialTextLen = 50

// signal is one weighted, independent scoring rule.
type signal struct {
	name   string
	weight int
	match  func(el blogscan.Element) bool
}

var signals = []signal{
	{"year-link", WeightYearLink, func(el blogscan.Element) bool {
		return linkHrefContains(el, "/20")
	}},
	{"blog-link", WeightBlogLink, func(el blogscan.Element) bool {
		return linkHrefContains(el, "/blog/")
	}},
	{"heading-child", WeightHeadingChild, func(el blogscan.Element) bool {
		_, ok := el.Query("h1, h2, h3, span")
		return ok
	}},
	{"substantial-text", WeightSubstantialText, func(el blogscan.Element) bool {
		return utf8.RuneCountInString(el.Text()) > substantialTextLen
	}},
	{"semantic-tag", WeightSemanticTag, func(el blogscan.Element) bool {
		return el.Tag() == "article"
	}},
	{"date-markup", WeightDateMarkup, func(el blogscan.Element) bool {
		html := strings.ToLower(el.InnerHTML())
		return strings.Contains(html, "date") || strings.Contains(html, "published")
	}},
	{"image", WeightImage, func(el blogscan.Element) bool {
		_, ok := el.Query("img")
		return ok
	}},
}

// Score returns the sum of the weights of all signals el exhibits.
func Score(el blogscan.Element) int {
	var total int
	for _, s := range signals {
		if s.match(el) {
			total += s.weight
		}
	}
	return total
}

// linkHrefContains reports whether el is an anchor whose raw href
// attribute contains substr.
func linkHrefContains(el blogscan.Element, substr string) bool {
	if !isLink(el) {
		return false
	}
	href, ok := el.Attr("href")
	return ok && strings.Contains(href, substr)
}

func isLink(el blogscan.Element) bool {
	return el.Tag() == "a"
}
