package scrape_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/mock"
	"github.com/fwojciec/pydocs/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	docsURL = "https://docs.example.org/3/"
	pepsURL = "https://peps.example.org/"
)

// site serves pages from a fixed map and fails every other URL with 404.
func site(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*pydocs.FetchResult, error) {
			body, ok := pages[url]
			if !ok {
				return nil, &pydocs.FetchError{URL: url, StatusCode: 404}
			}
			return &pydocs.FetchResult{
				URL:        url,
				StatusCode: 200,
				Encoding:   "utf-8",
				Body:       []byte(body),
				Text:       body,
			}, nil
		},
	}
}

func newScraper(pages map[string]string) (*scrape.Scraper, *bytes.Buffer) {
	var buf bytes.Buffer
	return &scrape.Scraper{
		Fetcher: site(pages),
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		DocsURL: docsURL,
		PEPsURL: pepsURL,
	}, &buf
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown modes", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(nil)

		_, err := s.Run(context.Background(), "crawl")

		assert.Equal(t, pydocs.EINVALID, pydocs.ErrorCode(err))
		assert.Contains(t, pydocs.ErrorMessage(err), "whats-new, latest-versions, download, pep")
	})

	t.Run("dispatches latest-versions", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(map[string]string{docsURL: sidebarPage})

		tbl, err := s.Run(context.Background(), pydocs.ModeLatestVersions)

		require.NoError(t, err)
		assert.Equal(t, []string{"Documentation link", "Version", "Status"}, tbl.Header)
	})

	t.Run("download produces no table", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(downloadSite())
		s.Archives = &mock.ArchiveStore{SaveFn: func(context.Context, *pydocs.Archive) error { return nil }}

		tbl, err := s.Run(context.Background(), pydocs.ModeDownload)

		require.NoError(t, err)
		assert.Nil(t, tbl)
	})

	t.Run("root page failure aborts the mode", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(nil)

		for _, mode := range pydocs.Modes {
			s.Archives = &mock.ArchiveStore{SaveFn: func(context.Context, *pydocs.Archive) error { return nil }}
			tbl, err := s.Run(context.Background(), mode)

			assert.Nil(t, tbl, mode)
			assert.Equal(t, pydocs.EFETCH, pydocs.ErrorCode(err), mode)
		}
	})
}

func TestScraper_Progress(t *testing.T) {
	t.Parallel()

	pages := whatsNewSite()
	delete(pages, docsURL+"whatsnew/3.11.html")
	s, _ := newScraper(pages)

	var (
		mu     sync.Mutex
		events []pydocs.Progress
	)
	s.Progress = func(p pydocs.Progress) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, p)
	}

	_, err := s.WhatsNew(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 3)
	failed := 0
	for i, e := range events {
		assert.Equal(t, i+1, e.Completed)
		assert.Equal(t, 3, e.Total)
		if e.Error != nil {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}

func TestScraper_ProgressConcurrent(t *testing.T) {
	t.Parallel()

	s, _ := newScraper(whatsNewSite())
	s.Concurrency = 4

	// Appending without a lock is safe only because callbacks are serialized.
	var completed []int
	s.Progress = func(p pydocs.Progress) {
		completed = append(completed, p.Completed)
	}

	_, err := s.WhatsNew(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, completed)
}
