package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/pydocs"
	pydocsslog "github.com/fwojciec/pydocs/slog"
	"github.com/fwojciec/pydocs/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Cache   *sqlite.Cache
	Fetcher pydocs.Fetcher
	Now     func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode        string        `arg:"" enum:"whats-new,latest-versions,download,pep" help:"Scrape mode: ${enum}."`
	ClearCache  bool          `short:"c" help:"Clear the HTTP cache before running."`
	Output      string        `short:"o" enum:"plain,pretty,file" default:"plain" help:"Output format: ${enum}."`
	Dir         string        `env:"PYDOCS_DIR" default:"." help:"Base directory for results, downloads, logs and the cache."`
	Cache       string        `env:"PYDOCS_CACHE" default:"http_cache.sqlite" help:"HTTP cache database, relative to --dir unless absolute."`
	CacheTTL    time.Duration `name:"cache-ttl" help:"Expire cached responses after this long (0 keeps them)."`
	Timeout     time.Duration `default:"30s" help:"Per-request timeout."`
	Concurrency int           `default:"1" help:"Concurrent sub-page fetch limit."`
	DocsURL     string        `name:"docs-url" default:"${docs_url}" help:"Python documentation root."`
	PEPsURL     string        `name:"peps-url" default:"${peps_url}" help:"PEP index root."`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for requests."`
	Verbose     bool          `short:"v" help:"Enable debug logging."`
}

// CachePath returns the cache database location.
func (c *CLI) CachePath() string {
	if filepath.IsAbs(c.Cache) || c.Cache == ":memory:" {
		return c.Cache
	}
	return filepath.Join(c.Dir, c.Cache)
}

// LogPath returns the log file location.
func (c *CLI) LogPath() string {
	return filepath.Join(c.Dir, filepath.FromSlash(pydocsslog.DefaultLogPath))
}
