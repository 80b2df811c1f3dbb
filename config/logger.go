package config

import (
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the given environment and level.
// Production uses the JSON handler; everything else gets text output.
// Level may be: debug, info, warn, error (default: info).
func NewLogger(environment, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
