// Package fs provides file-based outputs for pydocs: CSV result files and
// downloaded archives.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/pydocs"
)

// ResultsDir is the directory, relative to the base directory, that CSV
// results are written to.
const ResultsDir = "results"

// TimestampLayout is the timestamp embedded in result file names.
const TimestampLayout = "2006-01-02_15-04-05"

// ResultFileName returns the file name for a mode's results produced at t.
func ResultFileName(mode string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", mode, t.Format(TimestampLayout))
}

// Ensure CSVWriter implements pydocs.Renderer at compile time.
var _ pydocs.Renderer = (*CSVWriter)(nil)

// CSVWriter renders tables as CSV files using "\n" line endings and
// quoting only where needed.
type CSVWriter struct {
	baseDir string
	now     func() time.Time
	logger  *slog.Logger

	// LastPath is the file written by the most recent Render call.
	LastPath string
}

// CSVOption configures a CSVWriter.
type CSVOption func(*CSVWriter)

// WithClock overrides the time used to name result files.
func WithClock(now func() time.Time) CSVOption {
	return func(w *CSVWriter) {
		w.now = now
	}
}

// WithLogger logs the path of every file written.
func WithLogger(logger *slog.Logger) CSVOption {
	return func(w *CSVWriter) {
		w.logger = logger
	}
}

// NewCSVWriter creates a CSVWriter that writes under baseDir/results.
func NewCSVWriter(baseDir string, opts ...CSVOption) *CSVWriter {
	w := &CSVWriter{
		baseDir: baseDir,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Render writes the table, header first, to a new timestamped file.
func (w *CSVWriter) Render(ctx context.Context, mode string, t *pydocs.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dir := filepath.Join(w.baseDir, ResultsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, ResultFileName(mode, w.now()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(t.Records()); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	w.LastPath = path
	w.logger.Info("results saved", "path", path)
	return nil
}
