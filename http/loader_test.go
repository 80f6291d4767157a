package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/analyze"
	blogscanhttp "github.com/fwojciec/blogscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses the page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><a href="/2024/hello"><span>Hello</span></a></body></html>`))
		}))
		defer server.Close()

		loader := blogscanhttp.NewLoader()
		defer loader.Close()

		snap, err := loader.Load(context.Background(), server.URL)
		require.NoError(t, err)
		defer snap.Close()

		assert.Equal(t, server.URL, snap.URL())
		articles := analyze.NewAnalyzer().Extract(snap)
		require.Len(t, articles, 1)
		assert.Equal(t, blogscan.Article{Title: "Hello", URL: server.URL + "/2024/hello"}, articles[0])
	})

	t.Run("resolves links against the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/blog/", http.StatusFound)
		})
		mux.HandleFunc("/blog/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><a id="l" href="first-post">First</a></body></html>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		loader := blogscanhttp.NewLoader()

		snap, err := loader.Load(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, server.URL+"/blog/", snap.URL())
		links := snap.QueryAll("#l")
		require.Len(t, links, 1)
		assert.Equal(t, server.URL+"/blog/first-post", links[0].Href())
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			// "Café" in Latin-1.
			_, _ = w.Write([]byte("<html><body><h1 id=\"t\">Caf\xe9</h1></body></html>"))
		}))
		defer server.Close()

		loader := blogscanhttp.NewLoader()

		snap, err := loader.Load(context.Background(), server.URL)
		require.NoError(t, err)

		titles := snap.QueryAll("#t")
		require.Len(t, titles, 1)
		assert.Equal(t, "Café", titles[0].Text())
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		loader := blogscanhttp.NewLoader(blogscanhttp.WithUserAgent("test-agent"))

		_, err := loader.Load(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", <-got)
	})

	t.Run("returns error for non-200 status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		loader := blogscanhttp.NewLoader()

		_, err := loader.Load(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		loader := blogscanhttp.NewLoader(blogscanhttp.WithTimeout(10 * time.Millisecond))

		_, err := loader.Load(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		loader := blogscanhttp.NewLoader()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := loader.Load(ctx, "http://example.com")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		loader := blogscanhttp.NewLoader()

		_, err := loader.Load(context.Background(), "http://[::1")
		require.Error(t, err)
		assert.Equal(t, blogscan.EINVALID, blogscan.ErrorCode(err))
	})
}
