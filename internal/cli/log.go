// Package cli implements the hext command-line interface.
//
// The CLI loads N-Triples, N-Quads or JSON-LD documents and writes them as
// Hextuples. It is built on cobra, logs through charmbracelet/log, and reads
// optional defaults from a TOML file (see internal/config).
//
// # Logging
//
// Loggers and the loaded configuration travel in context.Context, so every
// command sees the same settings. --verbose forces debug level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-hext/internal/config"
)

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the attached config, or config.Default().
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
