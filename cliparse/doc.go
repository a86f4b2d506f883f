// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves command-line and environment configuration.

# Configuration

Resolve turns raw flag values into a validated Config:

	cfg, err := cliparse.Resolve(opts)

# Config Fields

  - Title: report banner title (default: "MELLO 2026")
  - LogLevel: diagnostic verbosity as a slog.Level (default: info)
  - LogFormat: "text" or "json" (default: text on a terminal, json otherwise)

# Environment Variables

Flags fall back to environment variables:

	MELLO_TITLE → --title
	LOG_LEVEL   → --log-level
	LOG_FORMAT  → --log-format

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first, if present.

# Validation

Resolve returns an error for a blank title, an unknown log level, or an
unknown log format.
*/
package cliparse
