package rod

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/go-rod/rod"
)

// Ensure Loader implements blogscan.Loader at compile time.
var _ blogscan.Loader = (*Loader)(nil)

// DefaultTimeout bounds navigation and the load event.
const DefaultTimeout = 30 * time.Second

// Loader renders pages in a headless browser and waits for network
// activity to die down before handing them over.
// Loader is safe for concurrent use by multiple goroutines.
type Loader struct {
	manager *BrowserManager
	settle  blogscan.SettlePolicy
	timeout time.Duration
	logger  *slog.Logger
	closed  atomic.Bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSettlePolicy sets how long to wait for network idleness after load.
func WithSettlePolicy(p blogscan.SettlePolicy) Option {
	return func(l *Loader) {
		l.settle = p
	}
}

// WithTimeout bounds navigation and the load event.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithLogger sets the logger used to report pages that never settled.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader backed by manager. Closing the Loader closes
// the manager.
func NewLoader(manager *BrowserManager, opts ...Option) *Loader {
	l := &Loader{
		manager: manager,
		settle:  blogscan.DefaultSettlePolicy(),
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load navigates to url, waits for the load event and then for the network
// to go idle. A page still busy when the settle timeout expires is
// returned as it is.
func (l *Loader) Load(ctx context.Context, url string) (blogscan.Snapshot, error) {
	if l.closed.Load() {
		return nil, blogscan.Errorf(blogscan.EINVALID, "loader is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := l.manager.Page()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := l.navigate(ctx, page, url); err != nil {
		_ = l.manager.Release(page)
		return nil, err
	}

	if err := l.waitIdle(ctx, page); err != nil {
		if ctx.Err() != nil {
			_ = l.manager.Release(page)
			return nil, ctx.Err()
		}
		l.logger.Warn("page did not settle, continuing", "url", url, "timeout", l.settle.Timeout)
	}

	return &Snapshot{page: page, url: url, manager: l.manager}, nil
}

func (l *Loader) navigate(ctx context.Context, page *rod.Page, url string) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	p := page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for load of %s: %w", url, err)
	}
	return nil
}

// waitIdle blocks until no request has been in flight for the idle time,
// or the settle timeout expires.
func (l *Loader) waitIdle(ctx context.Context, page *rod.Page) error {
	ctx, cancel := context.WithTimeout(ctx, l.settle.Timeout)
	defer cancel()

	wait := page.Context(ctx).WaitRequestIdle(l.settle.IdleTime, nil, nil, nil)
	wait()

	return ctx.Err()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (l *Loader) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	return l.manager.Close()
}
