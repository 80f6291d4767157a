package analyze_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/analyze"
	"github.com/fwojciec/blogscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://blog.example.com/"

func parse(t *testing.T, html string) blogscan.Document {
	t.Helper()
	doc, err := goquery.NewDocument(html, baseURL)
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc blogscan.Document, id string) blogscan.Element {
	t.Helper()
	elems := doc.QueryAll("#" + id)
	require.Len(t, elems, 1, "element #%s", id)
	return elems[0]
}

// text returns a string of exactly n characters starting with prefix.
func text(prefix string, n int) string {
	return prefix + strings.Repeat("x", n-utf8.RuneCountInString(prefix))
}

// assertInvariants checks the guarantees every extraction result holds.
func assertInvariants(t *testing.T, articles []blogscan.Article) {
	t.Helper()

	assert.LessOrEqual(t, len(articles), blogscan.MaxArticles)

	urls := make(map[string]bool)
	titles := make(map[string]bool)
	for _, a := range articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.URL)
		assert.False(t, urls[a.URL], "duplicate url %s", a.URL)
		assert.False(t, titles[a.Title], "duplicate title %s", a.Title)
		urls[a.URL] = true
		titles[a.Title] = true

		assert.False(t, analyze.IsNavigational(a.URL), "navigational url %s", a.URL)

		if a.HasDescription() {
			assert.Equal(t, strings.TrimSpace(a.Description), a.Description)
			assert.Greater(t, utf8.RuneCountInString(a.Description), 50)
		}
	}
}
