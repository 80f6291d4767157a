package mock

import (
	"context"

	"github.com/fwojciec/blogscan"
)

var _ blogscan.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of blogscan.ReportService.
type ReportService struct {
	SaveRunFn      func(ctx context.Context, run *blogscan.Run, reports []*blogscan.SiteReport) ([]*blogscan.StoredArticle, error)
	FindRunsFn     func(ctx context.Context, limit int) ([]*blogscan.Run, error)
	FindArticlesFn func(ctx context.Context, filter blogscan.ArticleFilter) ([]*blogscan.StoredArticle, error)
}

func (s *ReportService) SaveRun(ctx context.Context, run *blogscan.Run, reports []*blogscan.SiteReport) ([]*blogscan.StoredArticle, error) {
	return s.SaveRunFn(ctx, run, reports)
}

func (s *ReportService) FindRuns(ctx context.Context, limit int) ([]*blogscan.Run, error) {
	return s.FindRunsFn(ctx, limit)
}

func (s *ReportService) FindArticles(ctx context.Context, filter blogscan.ArticleFilter) ([]*blogscan.StoredArticle, error) {
	return s.FindArticlesFn(ctx, filter)
}
