package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pydocs"
)

// Ensure LoggingRenderer implements pydocs.Renderer.
var _ pydocs.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   pydocs.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next pydocs.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(ctx context.Context, mode string, t *pydocs.Table) (err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render",
			"mode", mode,
			"rows", t.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, mode, t)
}
