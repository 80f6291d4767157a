// Package slog provides logging decorators for the blogscan services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogscan"
)

// Ensure LoggingLoader implements blogscan.Loader.
var _ blogscan.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   blogscan.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next blogscan.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load logs the URL being loaded and delegates to the wrapped loader.
func (l *LoggingLoader) Load(ctx context.Context, url string) (snap blogscan.Snapshot, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}

// Close delegates to the wrapped loader.
func (l *LoggingLoader) Close() error {
	return l.next.Close()
}
