// Package scan runs article extraction across a list of sites.
// It coordinates rate limiting, page loading and extraction, and isolates
// per-site failures so one broken blog never aborts the batch.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/blogscan"
	"golang.org/x/sync/errgroup"
)

// Scanner loads each site and extracts its articles.
type Scanner struct {
	Loader      blogscan.Loader
	Extractor   blogscan.Extractor
	RateLimiter blogscan.DomainLimiter
	Concurrency int
	Logger      *slog.Logger
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Site      blogscan.Site
	Articles  int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// Scan processes sites and returns one report per site in input order.
// Site failures are recorded in the site's report. Scan itself never
// fails; a canceled context marks the remaining sites as failed.
func (s *Scanner) Scan(ctx context.Context, sites []blogscan.Site, progress ProgressFunc) []*blogscan.SiteReport {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	logger := s.logger()

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(sites)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	type result struct {
		position int
		report   *blogscan.SiteReport
	}
	resultCh := make(chan result, total)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	go func() {
		for i, site := range sites {
			g.Go(func() error {
				resultCh <- result{position: i, report: s.scanSite(ctx, site)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	reports := make([]*blogscan.SiteReport, total)
	var completed atomic.Int64
	for r := range resultCh {
		reports[r.position] = r.report
		n := int(completed.Add(1))

		if r.report.Failed() {
			logger.Warn("site failed", "site", r.report.Site.Name, "url", r.report.Site.URL, "err", r.report.Err)
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: n,
				Total:     total,
				Site:      r.report.Site,
				Error:     r.report.Err,
			})
			continue
		}

		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			Site:      r.report.Site,
			Articles:  len(r.report.Articles),
		})
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return reports
}

// ScanSite processes a single site.
func (s *Scanner) ScanSite(ctx context.Context, site blogscan.Site) *blogscan.SiteReport {
	return s.scanSite(ctx, site)
}

func (s *Scanner) scanSite(ctx context.Context, site blogscan.Site) (report *blogscan.SiteReport) {
	report = &blogscan.SiteReport{Site: site}
	defer func(begin time.Time) {
		report.Duration = time.Since(begin)
	}(time.Now())

	if err := site.Validate(); err != nil {
		report.Err = err
		return report
	}

	if s.RateLimiter != nil {
		u, _ := url.Parse(site.URL)
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			report.Err = fmt.Errorf("rate limit: %w", err)
			return report
		}
	}

	snap, err := s.Loader.Load(ctx, site.URL)
	if err != nil {
		report.Err = err
		return report
	}
	defer func() {
		if err := snap.Close(); err != nil {
			s.logger().Debug("closing page", "url", site.URL, "err", err)
		}
	}()

	report.Articles = s.Extractor.Extract(snap)
	return report
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
