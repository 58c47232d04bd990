package main

import (
	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/fs"
	"github.com/fwojciec/pydocs/scrape"
	pydocsslog "github.com/fwojciec/pydocs/slog"
)

// Run executes the selected scrape mode and renders its result.
func (c *CLI) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	logger := deps.Logger

	if c.ClearCache {
		n, err := deps.Cache.Clear(ctx)
		if err != nil {
			return err
		}
		logger.Info("cache cleared", "entries", n)
	}

	scraper := &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Archives:    fs.NewArchiveStore(c.Dir),
		Logger:      logger,
		DocsURL:     c.DocsURL,
		PEPsURL:     c.PEPsURL,
		Concurrency: c.Concurrency,
		Progress: func(p pydocs.Progress) {
			logger.Debug("progress",
				"url", p.URL,
				"completed", p.Completed,
				"total", p.Total,
				"err", p.Error,
			)
		},
	}

	t, err := scraper.Run(ctx, c.Mode)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	renderer := pydocsslog.NewLoggingRenderer(c.renderer(deps), logger)
	return renderer.Render(ctx, c.Mode, t)
}
