package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/mock"
	pydocsslog "github.com/fwojciec/pydocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pydocs.FetchResult, error) {
				body := []byte("<html>content</html>")
				return &pydocs.FetchResult{URL: url, Body: body, Text: string(body), FromCache: true}, nil
			},
		}

		fetcher := pydocsslog.NewLoggingFetcher(inner, debugLogger(&buf))
		res, err := fetcher.Fetch(context.Background(), "https://docs.python.org/3/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", res.Text)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://docs.python.org/3/")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "cached=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pydocs.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := pydocsslog.NewLoggingFetcher(inner, debugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://docs.python.org/3/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var rendered *pydocs.Table
	inner := &mock.Renderer{
		RenderFn: func(_ context.Context, _ string, t *pydocs.Table) error {
			rendered = t
			return nil
		},
	}

	tbl := pydocs.NewTable("Status", "Count")
	require.NoError(t, tbl.Append("Total:", "0"))

	err := pydocsslog.NewLoggingRenderer(inner, debugLogger(&buf)).Render(context.Background(), "pep", tbl)

	require.NoError(t, err)
	assert.Same(t, tbl, rendered)
	assert.Contains(t, buf.String(), "render")
	assert.Contains(t, buf.String(), "mode=pep")
	assert.Contains(t, buf.String(), "rows=1")
}
