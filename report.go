package blogscan

import (
	"context"
	"time"
)

// Run is one recorded scan over a list of sites.
type Run struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
	SiteCount    int       `json:"siteCount"`
	ArticleCount int       `json:"articleCount"`
}

// StoredArticle is an article recorded during a run.
type StoredArticle struct {
	ID       string `json:"id"`
	RunID    string `json:"runId"`
	SiteName string `json:"siteName"`
	SiteURL  string `json:"siteUrl"`
	Article

	Fingerprint string `json:"fingerprint"`

	// New is true when no earlier run recorded the article for this site.
	New bool `json:"new"`

	FirstSeenAt time.Time `json:"firstSeenAt"`
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	SiteName *string `json:"siteName"`
	RunID    *string `json:"runId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportService records scan results.
type ReportService interface {
	// SaveRun persists a run and the articles of its successful reports.
	// The run ID is generated. Returns the stored articles in report order.
	SaveRun(ctx context.Context, run *Run, reports []*SiteReport) ([]*StoredArticle, error)

	// FindRuns returns the most recent runs first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)

	// FindArticles retrieves stored articles matching the filter,
	// most recent first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*StoredArticle, error)
}
