package main

import (
	"fmt"

	"github.com/fwojciec/blogscan"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Runs {
		return c.listRuns(deps)
	}

	filter := blogscan.ArticleFilter{Limit: c.Limit}
	if c.Site != "" {
		filter.SiteName = &c.Site
	}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}

	articles, err := deps.Reports.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogscan.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles recorded. Use 'blogscan scan --save' to record some.")
		return nil
	}

	for _, a := range articles {
		marker := ""
		if a.New {
			marker = " [new]"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s: %s%s\n  %s\n",
			a.FirstSeenAt.Format("2006-01-02"), a.SiteName, a.Title, marker, a.URL)
	}
	return nil
}

func (c *HistoryCmd) listRuns(deps *Dependencies) error {
	runs, err := deps.Reports.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogscan.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d sites  %d articles  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.SiteCount, r.ArticleCount,
			r.FinishedAt.Sub(r.StartedAt))
	}
	return nil
}
