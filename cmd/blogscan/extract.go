package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/goquery"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	doc, err := goquery.NewDocument(string(html), c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogscan.ErrorMessage(err))
		return err
	}

	start := time.Now()
	report := &blogscan.SiteReport{
		Site:     blogscan.Site{Name: filepath.Base(c.File), URL: c.BaseURL},
		Articles: deps.Extractor.Extract(doc),
		Duration: time.Since(start),
	}

	if c.JSON {
		return writeJSON(deps.Stdout, []*blogscan.SiteReport{report})
	}
	fmt.Fprintln(deps.Stdout, blogscan.FormatReports([]*blogscan.SiteReport{report}))
	return nil
}
