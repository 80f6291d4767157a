package analyze

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/blogscan"
)

// navigationalFragments mark URLs of index and meta pages.
var navigationalFragments = []string{"/tags/", "/category/", "/about", "/contact"}

// titleSelectors are tried in order on container candidates.
var titleSelectors = []string{"h1", "h2", "h3", "span", `[class*="title"]`}

// descriptionSelectors are tried in order; the first match decides.
var descriptionSelectors = []string{
	"p",
	`[class*="excerpt"]`,
	`[class*="description"]`,
	`[class*="summary"]`,
}

// minDescriptionLen is the trimmed length, in runes, a description must
// exceed.
const minDescriptionLen = 50

// Collect extracts articles from ranked candidates, highest score first.
// A candidate is skipped when its title or URL is empty, when either was
// already collected, or when its URL is navigational. Collection stops at
// blogscan.MaxArticles.
func Collect(candidates []Candidate) []blogscan.Article {
	seen := newSeenSet()
	var articles []blogscan.Article

	for _, c := range candidates {
		if len(articles) >= blogscan.MaxArticles {
			break
		}

		title, url := fields(c.Element)
		if title == "" || url == "" {
			continue
		}
		if seen.has(url, title) {
			continue
		}
		if IsNavigational(url) {
			continue
		}

		seen.add(url, title)
		articles = append(articles, blogscan.Article{
			Title:       title,
			URL:         url,
			Description: description(c.Element),
		})
	}

	return articles
}

// IsNavigational reports whether url points at an index or meta page
// rather than content.
func IsNavigational(url string) bool {
	for _, frag := range navigationalFragments {
		if strings.Contains(url, frag) {
			return true
		}
	}
	return false
}

// fields extracts title and URL, choosing the strategy by element shape.
func fields(el blogscan.Element) (title, url string) {
	if isLink(el) {
		return anchorFields(el)
	}
	return containerFields(el)
}

// anchorFields takes the title from the first nested span when it has
// text, else from the link itself.
func anchorFields(el blogscan.Element) (title, url string) {
	if span, ok := el.Query("span"); ok {
		title = strings.TrimSpace(span.Text())
	}
	if title == "" {
		title = strings.TrimSpace(el.Text())
	}
	return title, el.Href()
}

func containerFields(el blogscan.Element) (title, url string) {
	for _, selector := range titleSelectors {
		if t, ok := el.Query(selector); ok {
			title = strings.TrimSpace(t.Text())
			break
		}
	}

	if link, ok := el.Query("a"); ok {
		url = link.Href()
	} else if link, ok := el.Closest("a"); ok {
		url = link.Href()
	}
	return title, url
}

// description returns the text of the first description-like descendant,
// or an empty string if there is none or it is too short.
func description(el blogscan.Element) string {
	for _, selector := range descriptionSelectors {
		d, ok := el.Query(selector)
		if !ok {
			continue
		}
		if text := strings.TrimSpace(d.Text()); utf8.RuneCountInString(text) > minDescriptionLen {
			return text
		}
		return ""
	}
	return ""
}

// seenSet tracks URLs and titles collected during one extraction.
type seenSet struct {
	urls   map[string]struct{}
	titles map[string]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		urls:   make(map[string]struct{}),
		titles: make(map[string]struct{}),
	}
}

func (s *seenSet) has(url, title string) bool {
	_, seenURL := s.urls[url]
	_, seenTitle := s.titles[title]
	return seenURL || seenTitle
}

func (s *seenSet) add(url, title string) {
	s.urls[url] = struct{}{}
	s.titles[title] = struct{}{}
}
