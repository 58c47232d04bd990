package main_test

import (
	"path/filepath"
	"testing"

	main "github.com/fwojciec/pydocs/cmd/pydocs"
	pydocsslog "github.com/fwojciec/pydocs/slog"
	"github.com/stretchr/testify/assert"
)

func TestCLI_Paths(t *testing.T) {
	t.Parallel()

	t.Run("cache is relative to the base directory", func(t *testing.T) {
		t.Parallel()

		c := &main.CLI{Dir: "work", Cache: "http_cache.sqlite"}

		assert.Equal(t, filepath.Join("work", "http_cache.sqlite"), c.CachePath())
		assert.Equal(t, filepath.Join("work", "logs", "parser.log"), c.LogPath())
	})

	t.Run("log file follows the default log path", func(t *testing.T) {
		t.Parallel()

		c := &main.CLI{Dir: "work"}

		assert.Equal(t, filepath.Join("work", filepath.FromSlash(pydocsslog.DefaultLogPath)), c.LogPath())
	})

	t.Run("absolute cache paths are kept", func(t *testing.T) {
		t.Parallel()

		c := &main.CLI{Dir: "work", Cache: "/var/cache/pydocs.sqlite"}

		assert.Equal(t, "/var/cache/pydocs.sqlite", c.CachePath())
	})
}
