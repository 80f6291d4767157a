package scan

import (
	"context"
	"sync"

	"github.com/fwojciec/blogscan"
	"golang.org/x/time/rate"
)

var _ blogscan.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces site loads by host. Each host of a site URL gets its
// own token bucket, so blogs on different hosts load in parallel while
// several blogs sharing a host are spaced out.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps page loads per
// second to each host, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the host may be loaded again or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = l
	}
	return l
}
