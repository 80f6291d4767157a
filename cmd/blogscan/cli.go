package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *blogscan.Config
	Extractor blogscan.Extractor
	Scanner   *scan.Scanner
	Reports   blogscan.ReportService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"Config file (default: blogscan.yaml in . or ~/.blogscan)"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Scan    ScanCmd    `cmd:"" help:"Extract the latest articles from each configured blog"`
	Extract ExtractCmd `cmd:"" help:"Extract articles from a saved HTML page"`
	History HistoryCmd `cmd:"" help:"List articles recorded by earlier scans"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Sites       []string `name:"site" short:"s" placeholder:"NAME=URL" help:"Blog to scan (repeatable, replaces configured sites)"`
	HTTP        bool     `name:"http" help:"Fetch pages over plain HTTP instead of a headless browser"`
	JSON        bool     `name:"json" help:"Print reports as JSON"`
	Save        bool     `help:"Record results in the history database"`
	Concurrency int      `help:"Number of sites scanned at once (overrides config)"`
	Stealth     bool     `help:"Hide headless browser fingerprints"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File    string `arg:"" type:"existingfile" help:"HTML file to analyze"`
	BaseURL string `name:"base-url" short:"u" default:"http://localhost/" help:"URL the page was served from"`
	JSON    bool   `name:"json" help:"Print the report as JSON"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Site  string `help:"Only show articles from this site"`
	RunID string `name:"run" help:"Only show articles from this run"`
	Limit int    `default:"20" help:"Maximum number of entries"`
	Runs  bool   `help:"List runs instead of articles"`
}
