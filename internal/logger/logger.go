package logger

import (
	"log/slog"
	"os"
)

// New builds the shared application logger: JSON to stdout at Info level.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
