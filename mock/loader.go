package mock

import (
	"context"

	"github.com/fwojciec/blogscan"
)

var (
	_ blogscan.Loader        = (*Loader)(nil)
	_ blogscan.Snapshot      = (*Snapshot)(nil)
	_ blogscan.DomainLimiter = (*DomainLimiter)(nil)
)

// Loader is a mock implementation of blogscan.Loader.
type Loader struct {
	LoadFn  func(ctx context.Context, url string) (blogscan.Snapshot, error)
	CloseFn func() error
}

func (l *Loader) Load(ctx context.Context, url string) (blogscan.Snapshot, error) {
	return l.LoadFn(ctx, url)
}

func (l *Loader) Close() error {
	return l.CloseFn()
}

// Snapshot is a mock implementation of blogscan.Snapshot.
type Snapshot struct {
	URLFn      func() string
	QueryAllFn func(selector string) []blogscan.Element
	CloseFn    func() error
}

func (s *Snapshot) URL() string {
	return s.URLFn()
}

func (s *Snapshot) QueryAll(selector string) []blogscan.Element {
	return s.QueryAllFn(selector)
}

func (s *Snapshot) Close() error {
	return s.CloseFn()
}

// DomainLimiter is a mock implementation of blogscan.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
