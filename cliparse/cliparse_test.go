// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"

	"github.com/MartinWickman/mello2026/logger"
)

// clearEnv pins the config environment so ambient variables cannot leak into
// a test. t.Setenv also restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvTitle, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve(Options{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, cfg.Title)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	// The format default depends on whether stderr is a terminal.
	if cfg.LogFormat != logger.FormatText && cfg.LogFormat != logger.FormatJSON {
		t.Errorf("expected text or json, got %q", cfg.LogFormat)
	}
}

func TestResolve_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTitle, "MELLO 2027")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Resolve(Options{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != "MELLO 2027" {
		t.Errorf("expected title from env, got %q", cfg.Title)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != logger.FormatJSON {
		t.Errorf("expected json format, got %q", cfg.LogFormat)
	}
}

func TestResolve_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTitle, "FROM ENV")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Resolve(Options{Title: "FROM FLAG", LogLevel: "warn", LogFormat: "text"})
	if err != nil {
		t.Fatal(err)
	}

	// Flags should override env
	if cfg.Title != "FROM FLAG" {
		t.Errorf("flag should override env: expected FROM FLAG, got %q", cfg.Title)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("flag should override env: expected warn, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != logger.FormatText {
		t.Errorf("flag should override env: expected text, got %q", cfg.LogFormat)
	}
}

func TestResolve_CaseInsensitiveFormat(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve(Options{LogFormat: "JSON"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFormat != logger.FormatJSON {
		t.Errorf("expected json, got %q", cfg.LogFormat)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"blank title", Options{Title: "   "}},
		{"unknown level", Options{LogLevel: "verbose"}},
		{"unknown format", Options{LogFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Resolve(tt.opts); err == nil {
				t.Errorf("expected error for %+v, got none", tt.opts)
			}
		})
	}
}
