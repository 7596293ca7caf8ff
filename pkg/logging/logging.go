// Package logging builds the service's structured logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWriter(os.Stdout, cfg)
}

// NewWriter creates a logger writing to w with the configured level and format.
func NewWriter(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Level is a logging severity name.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Validate reports an error for unknown level names.
func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	}
	return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l)
}

// ToSlogLevel converts to slog.Level; unknown names map to info.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format is a log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate reports an error for unknown formats.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid log format: %s (must be text or json)", f)
}
