package blogscan

import (
	"net/url"
	"time"
)

// Site describes a blog homepage to scan.
type Site struct {
	Name string `json:"name" mapstructure:"name"`
	URL  string `json:"url"  mapstructure:"url"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return Errorf(EINVALID, "invalid site URL %q: %v", s.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "site URL %q must be http or https", s.URL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "site URL %q has no host", s.URL)
	}
	return nil
}

// DefaultSites returns the blogs scanned when no sites are configured.
func DefaultSites() []Site {
	return []Site{
		{Name: "Josh Comeau's Blog", URL: "https://www.joshwcomeau.com/"},
		{Name: "Overreacted", URL: "https://overreacted.io/"},
		{Name: "Swizec's Blog", URL: "https://swizec.com/blog/"},
	}
}

// SiteReport is the outcome of scanning one site.
// A failed site has a non-nil Err and no articles.
type SiteReport struct {
	Site     Site          `json:"site"`
	Articles []Article     `json:"articles"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the site could not be scanned.
func (r *SiteReport) Failed() bool {
	return r.Err != nil
}
