package blogscan_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/blogscan"
	"github.com/stretchr/testify/assert"
)

func TestFormatReports(t *testing.T) {
	t.Parallel()

	t.Run("formats articles with and without descriptions", func(t *testing.T) {
		t.Parallel()

		reports := []*blogscan.SiteReport{
			{
				Site: blogscan.Site{Name: "Overreacted"},
				Articles: []blogscan.Article{
					{Title: "First", URL: "https://overreacted.io/first/", Description: "An excerpt."},
					{Title: "Second", URL: "https://overreacted.io/second/"},
				},
			},
		}

		result := blogscan.FormatReports(reports)

		expected := "Overreacted Articles:\n" +
			"  1. First\n     https://overreacted.io/first/\n     An excerpt.\n" +
			"  2. Second\n     https://overreacted.io/second/"
		assert.Equal(t, expected, result)
	})

	t.Run("reports failed sites with their error", func(t *testing.T) {
		t.Parallel()

		reports := []*blogscan.SiteReport{
			{Site: blogscan.Site{Name: "Broken"}, Err: errors.New("navigation failed")},
		}

		result := blogscan.FormatReports(reports)

		assert.Equal(t, "Broken Articles:\n  error: navigation failed", result)
	})

	t.Run("marks sites without articles", func(t *testing.T) {
		t.Parallel()

		reports := []*blogscan.SiteReport{
			{Site: blogscan.Site{Name: "Empty"}},
			{Site: blogscan.Site{Name: "Also Empty"}},
		}

		result := blogscan.FormatReports(reports)

		assert.Equal(t, "Empty Articles:\n  (no articles)\n\nAlso Empty Articles:\n  (no articles)", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, blogscan.FormatReports(nil))
	})
}
