// Package logger builds the slog loggers used across mnemos.
package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

type config struct {
	level  slog.Level
	pretty bool
	json   bool
	source bool
	out    io.Writer
}

// New creates a *slog.Logger. Defaults to an Info level text handler on stderr.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelInfo, out: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	w := c.out

	switch {
	case c.pretty:
		level := charmlog.InfoLevel
		if c.level <= slog.LevelDebug {
			level = charmlog.DebugLevel
		}
		return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
			Level:        level,
			ReportCaller: c.source,
			Prefix:       "mnemos",
		}))
	case c.json:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.level, AddSource: c.source}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.level, AddSource: c.source}))
	}
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
