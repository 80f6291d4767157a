// Package http loads pages over plain HTTP for sites that render their
// article lists on the server. No JavaScript runs and nothing settles.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/goquery"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies blogscan to the sites it reads.
const DefaultUserAgent = "blogscan/1.0 (+https://github.com/fwojciec/blogscan)"

// Ensure Loader implements blogscan.Loader at compile time.
var _ blogscan.Loader = (*Loader)(nil)

// Loader fetches HTML with an HTTP GET and parses it into a static
// document. Suitable for server-rendered sites only.
type Loader struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		l.userAgent = ua
	}
}

// NewLoader creates a new HTTP Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Load fetches url and parses the response body. The body is decoded to
// UTF-8 using the declared or sniffed charset. Relative links resolve
// against the final URL after redirects.
func (l *Loader) Load(ctx context.Context, url string) (blogscan.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, blogscan.Errorf(blogscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(body, resp.Request.URL.String())
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Close is a no-op; http.Client needs no explicit cleanup.
func (l *Loader) Close() error {
	return nil
}
