// Package goquery implements the blogscan DOM interfaces over static HTML
// using goquery. It backs the HTTP loader, the extract command and tests.
//
// Computed style is approximated from markup alone: the hidden attribute
// and inline style declarations. Rules from stylesheets are not applied.
package goquery

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogscan"
	"golang.org/x/net/html"
)

// Ensure Document implements blogscan.Snapshot at compile time.
var _ blogscan.Snapshot = (*Document)(nil)

// Document is a parsed HTML page.
type Document struct {
	doc  *goquery.Document
	url  string
	base *url.URL
}

// NewDocument parses HTML loaded from pageURL.
// Relative hrefs are resolved against pageURL, or against the page's
// <base href> if it declares one.
func NewDocument(s string, pageURL string) (*Document, error) {
	return NewDocumentFromReader(strings.NewReader(s), pageURL)
}

// NewDocumentFromReader is like NewDocument but reads UTF-8 HTML from r.
func NewDocumentFromReader(r io.Reader, pageURL string) (*Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, blogscan.Errorf(blogscan.EINVALID, "invalid page URL: %v", err)
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, blogscan.Errorf(blogscan.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	return &Document{doc: doc, url: pageURL, base: base}, nil
}

// URL returns the address the document was loaded from.
func (d *Document) URL() string {
	return d.url
}

// QueryAll returns all elements matching the selector in document order.
// An invalid selector matches nothing.
func (d *Document) QueryAll(selector string) []blogscan.Element {
	return d.wrap(d.doc.Find(selector))
}

// Close is a no-op; a parsed document holds no external resources.
func (d *Document) Close() error {
	return nil
}

func (d *Document) wrap(sel *goquery.Selection) []blogscan.Element {
	if sel.Length() == 0 {
		return nil
	}
	elems := make([]blogscan.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s, doc: d})
	})
	return elems
}

// resolveURL resolves href against the document base.
// Returns an empty string if href cannot be parsed.
func (d *Document) resolveURL(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return d.base.ResolveReference(ref).String()
}
