package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	prevBase, prev := baseLogger, log
	baseLogger = zap.New(core)
	log = baseLogger.Sugar()
	t.Cleanup(func() { baseLogger, log = prevBase, prev })
	return logs
}

func TestStructuredFields(t *testing.T) {
	logs := observe(t)

	Infow("saved home location", "lat", 50.5)
	Errorw("request failed", "code", 404)

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if got := entries[0].ContextMap()["lat"]; got != 50.5 {
		t.Errorf("lat field %v, want 50.5", got)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("level %s, want error", entries[1].Level)
	}
	if got := entries[1].ContextMap()["code"]; got != int64(404) {
		t.Errorf("code field %v (%T), want 404", got, got)
	}
}

func TestLoggerFallback(t *testing.T) {
	prevBase, prev := baseLogger, log
	baseLogger, log = nil, nil
	t.Cleanup(func() { baseLogger, log = prevBase, prev })

	if Logger() == nil {
		t.Errorf("Logger() is nil before Init")
	}
}
