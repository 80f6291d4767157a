package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/scan"
)

// Apply overrides cfg with the command's flags.
func (c *ScanCmd) Apply(cfg *blogscan.Config) error {
	if len(c.Sites) > 0 {
		sites, err := parseSites(c.Sites)
		if err != nil {
			return err
		}
		cfg.Sites = sites
	}
	if c.HTTP {
		cfg.Mode = blogscan.ModeHTTP
	}
	if c.Concurrency != 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Stealth {
		cfg.Stealth = true
	}
	return cfg.Validate()
}

// parseSites parses NAME=URL pairs.
func parseSites(values []string) ([]blogscan.Site, error) {
	sites := make([]blogscan.Site, 0, len(values))
	for _, v := range values {
		name, url, ok := strings.Cut(v, "=")
		if !ok {
			return nil, blogscan.Errorf(blogscan.EINVALID, "site %q must be NAME=URL", v)
		}
		sites = append(sites, blogscan.Site{
			Name: strings.TrimSpace(name),
			URL:  strings.TrimSpace(url),
		})
	}
	return sites, nil
}

// Run executes the scan command. Sites that fail are reported and skipped;
// the command succeeds as long as the batch ran.
func (c *ScanCmd) Run(deps *Dependencies) error {
	run := &blogscan.Run{StartedAt: time.Now()}

	progress := func(e scan.ProgressEvent) {
		if e.Type == scan.ProgressCompleted || e.Type == scan.ProgressFailed {
			deps.Logger.Debug("progress", "completed", e.Completed, "total", e.Total, "site", e.Site.Name)
		}
	}
	reports := deps.Scanner.Scan(deps.Ctx, deps.Config.Sites, progress)
	run.FinishedAt = time.Now()

	for _, r := range reports {
		if r.Failed() {
			fmt.Fprintf(deps.Stderr, "error scraping %s: %v\n", r.Site.Name, r.Err)
		}
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, reports); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(deps.Stdout, blogscan.FormatReports(reports))
	}

	if !c.Save {
		return nil
	}

	stored, err := deps.Reports.SaveRun(deps.Ctx, run, reports)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogscan.ErrorMessage(err))
		return err
	}

	var fresh int
	for _, sa := range stored {
		if sa.New {
			fresh++
		}
	}
	fmt.Fprintf(deps.Stderr, "Saved run %s: %d articles, %d new\n", run.ID, len(stored), fresh)
	return nil
}

// jsonReport is the JSON form of a site report.
type jsonReport struct {
	Name       string             `json:"name"`
	URL        string             `json:"url"`
	Articles   []blogscan.Article `json:"articles"`
	Error      string             `json:"error,omitempty"`
	DurationMS int64              `json:"durationMs"`
}

func writeJSON(w io.Writer, reports []*blogscan.SiteReport) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		jr := jsonReport{
			Name:       r.Site.Name,
			URL:        r.Site.URL,
			Articles:   r.Articles,
			DurationMS: r.Duration.Milliseconds(),
		}
		if jr.Articles == nil {
			jr.Articles = []blogscan.Article{}
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
