package logger

import (
	"io"
	"log/slog"
)

// Option tunes the logger built by New
type Option func(*config)

// WithDebug lowers the level to Debug
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		if debug {
			c.level = slog.LevelDebug
		}
	}
}

// WithPretty selects the colorized charmbracelet handler for terminals
func WithPretty(pretty bool) Option {
	return func(c *config) { c.pretty = pretty }
}

// WithJSON selects one JSON object per record
func WithJSON(json bool) Option {
	return func(c *config) { c.json = json }
}

// WithWriter sends records to w instead of stderr
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithSource tags each record with the calling file and line
func WithSource(source bool) Option {
	return func(c *config) { c.source = source }
}
