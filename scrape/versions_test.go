package scrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sidebarPage = `<html><body>
<div class="sphinxsidebar"><div class="sphinxsidebarwrapper">
<h3>Navigation</h3>
<ul><li><a href="genindex.html">Index</a></li></ul>
<h3>Docs by version</h3>
<ul>
<li><a href="https://docs.python.org/3.14/">Python 3.14 (in development)</a></li>
<li><a href="https://docs.python.org/3.13/">Python 3.13 (stable)</a></li>
<li><a href="https://docs.python.org/3.8/">Python 3.8 (security-fixes)</a></li>
<li><a href="https://docs.python.org/2.0/">Python 2.0</a></li>
<li><a href="https://www.python.org/doc/versions/">All versions</a></li>
</ul>
</div></div>
</body></html>`

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		version string
		status  string
	}{
		{"Python 3.11 (stable)", "3.11", "stable"},
		{"Python 3.14 (in development)", "3.14", "in development"},
		{"Python 2.0", "Python 2.0", ""},
		{"All versions", "All versions", ""},
		{"Docs for Python 3.9 (security-fixes) here", "3.9", "security-fixes"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			version, status := scrape.ParseVersion(tt.text)

			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestScraper_LatestVersions(t *testing.T) {
	t.Parallel()

	t.Run("lists versions from the sidebar", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(map[string]string{docsURL: sidebarPage})

		tbl, err := s.LatestVersions(context.Background())

		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"https://docs.python.org/3.14/", "3.14", "in development"},
			{"https://docs.python.org/3.13/", "3.13", "stable"},
			{"https://docs.python.org/3.8/", "3.8", "security-fixes"},
			{"https://docs.python.org/2.0/", "Python 2.0", ""},
			{"https://www.python.org/doc/versions/", "All versions", ""},
		}, tbl.Rows)
	})

	t.Run("fails without an All versions list", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(map[string]string{
			docsURL: `<html><body><div class="sphinxsidebarwrapper">
<ul><li><a href="/3.13/">Python 3.13 (stable)</a></li></ul>
</div></body></html>`,
		})

		tbl, err := s.LatestVersions(context.Background())

		assert.Nil(t, tbl)
		assert.Equal(t, pydocs.ESTRUCTURE, pydocs.ErrorCode(err))
	})

	t.Run("fails without a sidebar", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(map[string]string{docsURL: `<html><body></body></html>`})

		_, err := s.LatestVersions(context.Background())

		var tnf *pydocs.TagNotFoundError
		require.ErrorAs(t, err, &tnf)
		assert.Equal(t, "div", tnf.Tag)
	})

	t.Run("repeated runs yield identical rows", func(t *testing.T) {
		t.Parallel()

		s, _ := newScraper(map[string]string{docsURL: sidebarPage})

		first, err := s.LatestVersions(context.Background())
		require.NoError(t, err)
		second, err := s.LatestVersions(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first.Records(), second.Records())
	})
}
