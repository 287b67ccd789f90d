package utils

import (
	"log/slog"
	"os"
)

// NewLogger builds the application logger. "json" is meant for deployed
// environments where logs are shipped as structured records, "text" for
// local development.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
}
