// Package genlog configures the structured logger quopsgen uses for
// its own diagnostics (which packages were scanned, which files were
// written), separate from the EncodeError/DecodeError values returned
// by generated code.
package genlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler's output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownLevel indicates an unrecognized log level string.
var ErrUnknownLevel = errors.New("unknown log level")

// ErrUnknownFormat indicates an unrecognized log format string.
var ErrUnknownFormat = errors.New("unknown log format")

// New builds a *slog.Logger from the --log-level/--log-format flag
// values, writing to w.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("genlog: %w", err)
	}
	fmt_, err := parseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("genlog: %w", err)
	}
	return slog.New(handler(w, lvl, fmt_)), nil
}

func handler(w io.Writer, lvl slog.Level, f Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if f == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

func parseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
