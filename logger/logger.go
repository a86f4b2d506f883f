// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Formats accepted by Init.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel converts a config string to a slog level. Unknown names are an
// error rather than a silent default so a typo in LOG_LEVEL surfaces.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (use debug, info, warn, or error)", s)
}

// NewRunID creates the UUID that tags every log line of one invocation, so
// interleaved runs can be told apart in collected logs.
func NewRunID() string {
	return uuid.NewString()
}

// Init installs the process-wide default logger writing to w. Diagnostics go
// to stderr in production so stdout stays reserved for the report; tests
// pass a buffer instead.
func Init(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler).With("run_id", NewRunID()))
}
