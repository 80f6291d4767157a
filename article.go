package blogscan

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// MaxArticles is the maximum number of articles extracted from one page.
const MaxArticles = 3

// Article is an entry recovered from a blog homepage.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`

	// Description is empty when the page offered no excerpt long enough
	// to be useful.
	Description string `json:"description,omitempty"`
}

// HasDescription reports whether the article carries a description.
func (a Article) HasDescription() bool {
	return a.Description != ""
}

// Fingerprint returns a stable key identifying the article by URL.
func (a Article) Fingerprint() string {
	return strconv.FormatUint(xxhash.Sum64String(a.URL), 16)
}

// Extractor recovers articles from a rendered document.
type Extractor interface {
	// Extract evaluates the document synchronously and returns at most
	// MaxArticles articles. Missing or malformed markup yields fewer
	// articles, never an error.
	Extract(doc Document) []Article
}
