package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/analyze"
	bhttp "github.com/fwojciec/blogscan/http"
	"github.com/fwojciec/blogscan/rod"
	"github.com/fwojciec/blogscan/scan"
	bslog "github.com/fwojciec/blogscan/slog"
	"github.com/fwojciec/blogscan/sqlite"
	"github.com/fwojciec/blogscan/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides the configured path when set.
	DBPath string

	// Loader replaces the configured page loader when set.
	Loader blogscan.Loader

	// SQLite database, opened for commands that need history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogscan"),
		kong.Description("Find the latest articles on blog homepages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogscan --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Extractor = bslog.NewLoggingExtractor(analyze.NewAnalyzer(), deps.Logger)

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	cfg, err := viper.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", blogscan.ErrorMessage(err))
		return err
	}

	if cmd == "scan" {
		if err := cli.Scan.Apply(cfg); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", blogscan.ErrorMessage(err))
			return err
		}
		deps.Config = cfg

		loader := m.Loader
		if loader == nil {
			if loader, err = newLoader(cfg, deps.Logger); err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --http")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		}
		defer loader.Close()

		deps.Scanner = &scan.Scanner{
			Loader:      bslog.NewLoggingLoader(loader, deps.Logger),
			Extractor:   deps.Extractor,
			RateLimiter: scan.NewDomainLimiter(cfg.RateLimit),
			Concurrency: cfg.Concurrency,
			Logger:      deps.Logger,
		}
	}

	if cmd == "history" || cli.Scan.Save {
		path := m.dbPath(cfg)
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BLOGSCAN_DB_PATH to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Reports = bslog.NewLoggingReportService(sqlite.NewReportService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLoader builds the page loader selected by the config.
func newLoader(cfg *blogscan.Config, logger *slog.Logger) (blogscan.Loader, error) {
	if cfg.Mode == blogscan.ModeHTTP {
		return bhttp.NewLoader(bhttp.WithTimeout(cfg.Timeout)), nil
	}

	manager, err := rod.NewBrowserManager(rod.WithStealthPages(cfg.Stealth))
	if err != nil {
		return nil, err
	}
	return rod.NewLoader(manager,
		rod.WithSettlePolicy(cfg.Settle),
		rod.WithTimeout(cfg.Timeout),
		rod.WithLogger(logger),
	), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (m *Main) dbPath(cfg *blogscan.Config) string {
	if m.DBPath != "" {
		return m.DBPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "blogscan.db"
	}
	dir := filepath.Join(home, ".blogscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}
