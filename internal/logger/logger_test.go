package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewReturnsJSONLogger(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger")
	}
	if _, ok := log.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", log.Handler())
	}
}

func TestNewLogsAtInfoLevel(t *testing.T) {
	log := New()
	ctx := context.Background()
	if !log.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("info level must be enabled")
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug level must be disabled")
	}
}
