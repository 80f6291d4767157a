package blogscan

import (
	"context"
	"time"
)

// Snapshot is a loaded page whose DOM has settled enough to be extracted.
// The DOM is treated as frozen while an Extractor evaluates it.
type Snapshot interface {
	Document

	// Close releases the page. Elements obtained from the snapshot must
	// not be used afterwards.
	Close() error
}

// Loader navigates to pages and hands them over once they have settled.
type Loader interface {
	// Load navigates to the URL and waits for the page to settle.
	// A page that does not settle in time is returned as-is rather than
	// failing. Errors are reserved for navigation failures.
	Load(ctx context.Context, url string) (Snapshot, error)

	// Close releases loader resources.
	Close() error
}

// SettlePolicy decides when a loaded page counts as fully rendered.
type SettlePolicy struct {
	// IdleTime is how long the page must go without in-flight requests.
	IdleTime time.Duration `mapstructure:"idle_time"`

	// Timeout caps the total wait for network idleness.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultSettlePolicy waits for 500ms without network activity, giving up
// after 3s.
func DefaultSettlePolicy() SettlePolicy {
	return SettlePolicy{
		IdleTime: 500 * time.Millisecond,
		Timeout:  3 * time.Second,
	}
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
