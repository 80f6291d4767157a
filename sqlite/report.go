package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogscan.ReportService = (*ReportService)(nil)

// ReportService implements blogscan.ReportService using SQLite.
type ReportService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db, Now: time.Now}
}

// SaveRun stores the run and the articles of every successful report in
// one transaction. An article is new when its fingerprint was never
// recorded for the same site URL.
func (s *ReportService) SaveRun(ctx context.Context, run *blogscan.Run, reports []*blogscan.SiteReport) ([]*blogscan.StoredArticle, error) {
	now := s.Now()
	if run.StartedAt.IsZero() {
		run.StartedAt = now
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = now
	}
	// Stored timestamps have second precision.
	run.StartedAt = run.StartedAt.UTC().Truncate(time.Second)
	run.FinishedAt = run.FinishedAt.UTC().Truncate(time.Second)
	if run.FinishedAt.Before(run.StartedAt) {
		return nil, blogscan.Errorf(blogscan.EINVALID, "run finishes before it starts")
	}

	run.ID = uuid.New().String()
	run.SiteCount = len(reports)
	run.ArticleCount = 0
	for _, r := range reports {
		if !r.Failed() {
			run.ArticleCount += len(r.Articles)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, site_count, article_count)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, formatTime(run.StartedAt), formatTime(run.FinishedAt), run.SiteCount, run.ArticleCount); err != nil {
		return nil, err
	}

	var stored []*blogscan.StoredArticle
	for _, r := range reports {
		if r.Failed() {
			continue
		}
		for _, a := range r.Articles {
			sa := &blogscan.StoredArticle{
				ID:          uuid.New().String(),
				RunID:       run.ID,
				SiteName:    r.Site.Name,
				SiteURL:     r.Site.URL,
				Article:     a,
				Fingerprint: a.Fingerprint(),
			}

			firstSeen, err := firstSeenAt(ctx, tx, sa.SiteURL, sa.Fingerprint)
			if err != nil {
				return nil, err
			}
			sa.New = firstSeen.IsZero()
			sa.FirstSeenAt = run.StartedAt
			if !sa.New {
				sa.FirstSeenAt = firstSeen
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO articles (id, run_id, site_name, site_url, title, url, description, fingerprint, is_new, first_seen_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, sa.ID, sa.RunID, sa.SiteName, sa.SiteURL, sa.Title, sa.URL, sa.Description,
				sa.Fingerprint, sa.New, formatTime(sa.FirstSeenAt)); err != nil {
				return nil, err
			}

			stored = append(stored, sa)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}

// firstSeenAt returns when the fingerprint was first recorded for the
// site, or the zero time if it never was.
func firstSeenAt(ctx context.Context, tx *sql.Tx, siteURL, fingerprint string) (time.Time, error) {
	var value sql.NullString
	err := tx.QueryRowContext(ctx, `
		SELECT MIN(first_seen_at) FROM articles WHERE site_url = ? AND fingerprint = ?
	`, siteURL, fingerprint).Scan(&value)
	if err != nil {
		return time.Time{}, err
	}
	if !value.Valid {
		return time.Time{}, nil
	}
	return parseRFC3339(value.String, "first_seen_at")
}

// FindRuns returns runs, most recent first. A limit of zero returns all.
func (s *ReportService) FindRuns(ctx context.Context, limit int) ([]*blogscan.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, started_at, finished_at, site_count, article_count
		FROM runs ORDER BY started_at DESC, rowid DESC`)
	appendPagination(&query, &args, limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*blogscan.Run
	for rows.Next() {
		var run blogscan.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.SiteCount, &run.ArticleCount); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindArticles retrieves stored articles matching the filter. Articles of
// newer runs come first; within a run they keep their extraction order.
func (s *ReportService) FindArticles(ctx context.Context, filter blogscan.ArticleFilter) ([]*blogscan.StoredArticle, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, blogscan.Errorf(blogscan.EINVALID, "limit and offset must not be negative")
	}

	var query strings.Builder
	var args []any

	query.WriteString(`SELECT a.id, a.run_id, a.site_name, a.site_url, a.title, a.url, a.description,
			a.fingerprint, a.is_new, a.first_seen_at
		FROM articles a JOIN runs r ON r.id = a.run_id WHERE 1=1`)

	if filter.SiteName != nil {
		query.WriteString(" AND a.site_name = ?")
		args = append(args, *filter.SiteName)
	}
	if filter.RunID != nil {
		query.WriteString(" AND a.run_id = ?")
		args = append(args, *filter.RunID)
	}

	query.WriteString(" ORDER BY r.started_at DESC, r.rowid DESC, a.rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*blogscan.StoredArticle
	for rows.Next() {
		var sa blogscan.StoredArticle
		var firstSeenAt string
		if err := rows.Scan(&sa.ID, &sa.RunID, &sa.SiteName, &sa.SiteURL, &sa.Title, &sa.URL,
			&sa.Description, &sa.Fingerprint, &sa.New, &firstSeenAt); err != nil {
			return nil, err
		}
		if sa.FirstSeenAt, err = parseRFC3339(firstSeenAt, "first_seen_at"); err != nil {
			return nil, err
		}
		articles = append(articles, &sa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(articles) == 0 && filter.RunID != nil {
		if err := s.requireRun(ctx, *filter.RunID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (s *ReportService) requireRun(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM runs WHERE id = ?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return blogscan.Errorf(blogscan.ENOTFOUND, "run not found")
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
