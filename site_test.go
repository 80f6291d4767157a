package blogscan_test

import (
	"testing"

	"github.com/fwojciec/blogscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSite_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		site    blogscan.Site
		wantErr string
	}{
		{name: "valid https site", site: blogscan.Site{Name: "Overreacted", URL: "https://overreacted.io/"}},
		{name: "valid http site", site: blogscan.Site{Name: "Local", URL: "http://localhost:8080/blog/"}},
		{name: "missing name", site: blogscan.Site{URL: "https://overreacted.io/"}, wantErr: "site name required"},
		{name: "missing URL", site: blogscan.Site{Name: "Overreacted"}, wantErr: "site URL required"},
		{name: "relative URL", site: blogscan.Site{Name: "Rel", URL: "/blog/"}, wantErr: "must be http or https"},
		{name: "unsupported scheme", site: blogscan.Site{Name: "FTP", URL: "ftp://example.com/"}, wantErr: "must be http or https"},
		{name: "missing host", site: blogscan.Site{Name: "NoHost", URL: "https:///blog"}, wantErr: "has no host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.site.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, blogscan.EINVALID, blogscan.ErrorCode(err))
			assert.Contains(t, blogscan.ErrorMessage(err), tt.wantErr)
		})
	}
}

func TestDefaultSites(t *testing.T) {
	t.Parallel()

	sites := blogscan.DefaultSites()

	require.Len(t, sites, 3)
	for _, s := range sites {
		assert.NoError(t, s.Validate(), s.Name)
	}
	assert.Equal(t, "Overreacted", sites[1].Name)
}

func TestArticle_Fingerprint(t *testing.T) {
	t.Parallel()

	a := blogscan.Article{Title: "A", URL: "https://example.com/2023/a"}
	b := blogscan.Article{Title: "Renamed", URL: "https://example.com/2023/a"}
	c := blogscan.Article{Title: "A", URL: "https://example.com/2023/c"}

	assert.NotEmpty(t, a.Fingerprint())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "fingerprint depends on URL only")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestStyle_Hidden(t *testing.T) {
	t.Parallel()

	assert.True(t, blogscan.Style{Display: "none"}.Hidden())
	assert.True(t, blogscan.Style{Display: "block", Visibility: "hidden"}.Hidden())
	assert.False(t, blogscan.Style{Display: "block", Visibility: "visible"}.Hidden())
	assert.False(t, blogscan.Style{Visibility: "collapse"}.Hidden())
	assert.False(t, blogscan.Style{}.Hidden())
}
