package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/blogscan"
)

// Ensure LoggingExtractor implements blogscan.Extractor.
var _ blogscan.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   blogscan.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next blogscan.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

func (e *LoggingExtractor) Extract(doc blogscan.Document) (articles []blogscan.Article) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"url", doc.URL(),
			"count", len(articles),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(doc)
}
