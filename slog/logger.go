package slog

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout used in log records.
const TimeFormat = "02.01.2006 15:04:05"

// Log file rotation limits.
const (
	MaxLogSizeMB  = 1
	MaxLogBackups = 5
)

// DefaultLogPath is the log file location relative to the base directory.
const DefaultLogPath = "logs/parser.log"

// Options configures NewLogger. Nil writers are skipped.
type Options struct {
	Level slog.Level

	// Console receives human-readable records.
	Console io.Writer

	// File receives logfmt records.
	File io.Writer
}

// NewLogger builds a logger that writes every record to each configured
// destination.
func NewLogger(opts Options) *slog.Logger {
	var handlers []slog.Handler
	if opts.Console != nil {
		handlers = append(handlers, charmlog.NewWithOptions(opts.Console, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      TimeFormat,
			Level:           charmlog.Level(opts.Level),
		}))
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.File, &slog.HandlerOptions{
			Level:       opts.Level,
			ReplaceAttr: formatTime,
		}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// NewRotatingFile returns a writer for path that rotates at MaxLogSizeMB
// and keeps MaxLogBackups old files. Parent directories are created on
// first write.
func NewRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxLogSizeMB,
		MaxBackups: MaxLogBackups,
	}
}

func formatTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.String(slog.TimeKey, a.Value.Time().Format(TimeFormat))
	}
	return a
}
