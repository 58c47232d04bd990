// Package slog provides log/slog based logging for pydocs: service
// decorators that record every call, and the logger setup used by the CLI.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pydocs"
)

// Ensure LoggingFetcher implements pydocs.Fetcher.
var _ pydocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   pydocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pydocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *pydocs.FetchResult, err error) {
	defer func(begin time.Time) {
		var size int
		var cached bool
		if res != nil {
			size = len(res.Body)
			cached = res.FromCache
		}
		f.logger.Debug("fetch",
			"url", url,
			"bytes", size,
			"cached", cached,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
