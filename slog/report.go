package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogscan"
)

// Ensure LoggingReportService implements blogscan.ReportService.
var _ blogscan.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService with logging.
type LoggingReportService struct {
	next   blogscan.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next blogscan.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

func (s *LoggingReportService) SaveRun(ctx context.Context, run *blogscan.Run, reports []*blogscan.SiteReport) (stored []*blogscan.StoredArticle, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save run",
			"run", run.ID,
			"sites", len(reports),
			"articles", len(stored),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRun(ctx, run, reports)
}

func (s *LoggingReportService) FindRuns(ctx context.Context, limit int) (runs []*blogscan.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find runs",
			"limit", limit,
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, limit)
}

func (s *LoggingReportService) FindArticles(ctx context.Context, filter blogscan.ArticleFilter) (articles []*blogscan.StoredArticle, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx, filter)
}
