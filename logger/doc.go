// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger configures the process-wide slog default.

Init picks a text or JSON handler, applies the level, and tags every record
with a fresh run_id UUID:

	logger.Init(os.Stderr, slog.LevelInfo, logger.FormatText)

Log output always goes to the writer given (stderr in the binary), never to
stdout: stdout belongs to the report and must stay byte-stable for anyone
piping it.
*/
package logger
