package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	pydocsslog "github.com/fwojciec/pydocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("writes records to every destination", func(t *testing.T) {
		t.Parallel()

		var console, file bytes.Buffer
		logger := pydocsslog.NewLogger(pydocsslog.Options{
			Level:   slog.LevelInfo,
			Console: &console,
			File:    &file,
		})

		logger.Info("parser started", "mode", "pep")

		assert.Contains(t, console.String(), "parser started")
		assert.Contains(t, console.String(), "pep")
		assert.Contains(t, file.String(), `msg="parser started"`)
		assert.Contains(t, file.String(), "mode=pep")
	})

	t.Run("formats timestamps day first", func(t *testing.T) {
		t.Parallel()

		var file bytes.Buffer
		logger := pydocsslog.NewLogger(pydocsslog.Options{File: &file})

		logger.Info("hello")

		assert.Regexp(t, regexp.MustCompile(`^time="\d{2}\.\d{2}\.\d{4} \d{2}:\d{2}:\d{2}" level=INFO msg=hello`), file.String())
	})

	t.Run("respects the level", func(t *testing.T) {
		t.Parallel()

		var console, file bytes.Buffer
		logger := pydocsslog.NewLogger(pydocsslog.Options{
			Level:   slog.LevelInfo,
			Console: &console,
			File:    &file,
		})

		logger.Debug("hidden")
		assert.Empty(t, console.String())
		assert.Empty(t, file.String())

		debug := pydocsslog.NewLogger(pydocsslog.Options{Level: slog.LevelDebug, File: &file})
		debug.Debug("shown")
		assert.Contains(t, file.String(), "msg=shown")
	})

	t.Run("carries attributes added with With", func(t *testing.T) {
		t.Parallel()

		var console, file bytes.Buffer
		logger := pydocsslog.NewLogger(pydocsslog.Options{Console: &console, File: &file}).With("run", "abc")

		logger.Info("hello")

		assert.Contains(t, console.String(), "run=abc")
		assert.Contains(t, file.String(), "run=abc")
	})
}

func TestNewLogger_NoDestinations(t *testing.T) {
	t.Parallel()

	logger := pydocsslog.NewLogger(pydocsslog.Options{})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("dropped")
}

func TestNewRotatingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "parser.log")
	w := pydocsslog.NewRotatingFile(path)
	defer w.Close()

	logger := pydocsslog.NewLogger(pydocsslog.Options{File: w})
	logger.Info("parser finished")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "parser finished")
	assert.Equal(t, pydocsslog.MaxLogSizeMB, w.MaxSize)
	assert.Equal(t, pydocsslog.MaxLogBackups, w.MaxBackups)
}
