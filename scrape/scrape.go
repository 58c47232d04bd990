// Package scrape implements the pydocs scrape modes on top of a
// pydocs.Fetcher and the goquery lookups.
package scrape

import (
	"context"
	"log/slog"
	"strings"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/goquery"
)

// Scraper runs scrape modes. It keeps no state between calls.
type Scraper struct {
	Fetcher  pydocs.Fetcher
	Archives pydocs.ArchiveStore
	Logger   *slog.Logger

	// Site roots. Empty values fall back to the public sites.
	DocsURL string
	PEPsURL string

	// Concurrency limits parallel sub-page fetches. Values below 1 fetch
	// sequentially.
	Concurrency int

	// Progress, if set, is called as sub-pages complete.
	Progress pydocs.ProgressFunc
}

// Run executes the named mode. Download returns a nil table.
func (s *Scraper) Run(ctx context.Context, mode string) (*pydocs.Table, error) {
	if !pydocs.ValidMode(mode) {
		return nil, pydocs.Errorf(pydocs.EINVALID, "unknown mode %q (want one of %s)", mode, strings.Join(pydocs.Modes, ", "))
	}
	switch mode {
	case pydocs.ModeWhatsNew:
		return s.WhatsNew(ctx)
	case pydocs.ModeLatestVersions:
		return s.LatestVersions(ctx)
	case pydocs.ModePEP:
		return s.PEP(ctx)
	}
	_, err := s.Download(ctx)
	return nil, err
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Scraper) docsURL() string {
	if s.DocsURL == "" {
		return pydocs.DefaultDocsURL
	}
	return s.DocsURL
}

func (s *Scraper) pepsURL() string {
	if s.PEPsURL == "" {
		return pydocs.DefaultPEPsURL
	}
	return s.PEPsURL
}

// page fetches and parses url.
func (s *Scraper) page(ctx context.Context, url string) (*pq.Document, error) {
	res, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.Parse(res.Text)
}
