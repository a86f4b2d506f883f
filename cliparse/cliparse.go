package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/MartinWickman/mello2026/logger"
)

// DefaultTitle is the report banner used when neither --title nor
// MELLO_TITLE is set.
const DefaultTitle = "MELLO 2026"

// Environment variables consulted when the matching flag is unset.
const (
	EnvTitle     = "MELLO_TITLE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Options carries the raw flag values from the command line. Empty strings
// mean "not set" and fall through to the environment, then to defaults.
type Options struct {
	Title     string
	LogLevel  string
	LogFormat string
}

// Config is the resolved, validated configuration.
type Config struct {
	Title     string
	LogLevel  slog.Level
	LogFormat string
}

// Resolve applies the flag > environment > default chain and validates the
// result. A .env file in the working directory is loaded first, if present,
// without overriding variables already set.
func Resolve(opts Options) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	title := opts.Title
	if title == "" {
		title = os.Getenv(EnvTitle)
	}
	if title == "" {
		title = DefaultTitle
	}
	if strings.TrimSpace(title) == "" {
		return Config{}, errors.New("title must not be blank (use --title or MELLO_TITLE)")
	}
	cfg.Title = title

	levelStr := opts.LogLevel
	if levelStr == "" {
		levelStr = os.Getenv(EnvLogLevel)
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	format := opts.LogFormat
	if format == "" {
		format = os.Getenv(EnvLogFormat)
	}
	if format == "" {
		format = defaultFormat()
	}
	format = strings.ToLower(format)
	switch format {
	case logger.FormatText, logger.FormatJSON:
	default:
		return Config{}, fmt.Errorf("unknown log format %q (use %s or %s)", format, logger.FormatText, logger.FormatJSON)
	}
	cfg.LogFormat = format

	return cfg, nil
}

// defaultFormat picks text for interactive terminals and json otherwise, so
// piped or collected diagnostics stay machine-readable.
func defaultFormat() string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return logger.FormatText
	}
	return logger.FormatJSON
}
