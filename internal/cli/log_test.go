package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-hext/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"warn at warn level", log.WarnLevel, func(l *log.Logger) { l.Warn("test") }, true},
		{"info at warn level", log.WarnLevel, func(l *log.Logger) { l.Info("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected default logger for empty context")
	}
	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), logger)) != logger {
		t.Error("expected attached logger")
	}
}

func TestConfigFromContext(t *testing.T) {
	if got := configFromContext(context.Background()); got != config.Default() {
		t.Errorf("expected default config, got %+v", got)
	}
	cfg := config.Default()
	cfg.Output.Escape = true
	if got := configFromContext(withConfig(context.Background(), cfg)); !got.Output.Escape {
		t.Error("expected attached config")
	}
}
