// Package logging builds the application logger. Output goes to a file
// because stdout belongs to the CLI tables and the TUI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New opens path for appending and returns a JSON logger at level. If the
// file cannot be opened the logger discards everything. The returned close
// func is always safe to call.
func New(path, level string) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if path == "" {
		return Discard(), func() error { return nil }
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Discard(), func() error { return nil }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return Discard(), func() error { return nil }
	}

	return slog.New(slog.NewJSONHandler(f, opts)), f.Close
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
