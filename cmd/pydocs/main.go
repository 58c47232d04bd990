package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pydocs"
	pydocshttp "github.com/fwojciec/pydocs/http"
	pydocsslog "github.com/fwojciec/pydocs/slog"
	"github.com/fwojciec/pydocs/sqlite"
	"github.com/fwojciec/pydocs/toml"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration files consulted for flag values, in order.
	ConfigPaths []string

	// Transport used for cache misses. Nil uses http.DefaultTransport.
	Transport http.RoundTripper

	// Clock for result file names.
	Now func() time.Time

	// SQLite database backing the HTTP cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"pydocs.toml", "~/.config/pydocs/config.toml"},
		Now:         time.Now,
	}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pydocs"),
		kong.Description("Scrape facts from the Python documentation and the PEP index."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"docs_url": pydocs.DefaultDocsURL,
			"peps_url": pydocs.DefaultPEPsURL,
		},
		kong.Configuration(toml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no mode specified. Run 'pydocs --help' to see available modes")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(cli.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create %q: %w", cli.Dir, err)
	}

	logFile := pydocsslog.NewRotatingFile(cli.LogPath())
	defer logFile.Close()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := pydocsslog.NewLogger(pydocsslog.Options{
		Level:   level,
		Console: stderr,
		File:    logFile,
	}).With("run", uuid.New().String())

	logger.Info("parser started")
	logger.Info("command line arguments",
		"mode", cli.Mode,
		"output", cli.Output,
		"clear_cache", cli.ClearCache,
		"dir", cli.Dir,
	)

	m.DB = sqlite.NewDB(cli.CachePath())
	if err := m.DB.Open(); err != nil {
		logger.Error("parser failed", "err", err)
		fmt.Fprintf(stderr, "Hint: Set PYDOCS_CACHE to use a different cache path\n")
		return fmt.Errorf("failed to open cache at %q: %w", cli.CachePath(), err)
	}
	defer m.Close()

	cache := sqlite.NewCache(m.DB, m.Transport, sqlite.WithTTL(cli.CacheTTL), sqlite.WithLogger(logger))
	fetcher := pydocshttp.NewFetcher(
		pydocshttp.WithTimeout(cli.Timeout),
		pydocshttp.WithTransport(cache),
		pydocshttp.WithUserAgent(cli.UserAgent),
	)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Cache:   cache,
		Fetcher: pydocsslog.NewLoggingFetcher(fetcher, logger),
		Now:     m.Now,
	}

	if err := cli.Run(deps); err != nil {
		logger.Error("parser failed", "err", err)
		return err
	}

	logger.Info("parser finished")
	return nil
}
