// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the mello2026 ballot tally.

mello2026 reads a Google Forms TSV export of Mello jury ballots, validates
every ballot against the fixed point scheme (10, 8, 6, 5, 4, 3, 2, 1 each
used exactly once, sum 39), and prints a ranked leaderboard with finalist
destinations plus a per-voter diagnostic listing.

# Running

	mello2026 ballots.tsv

The report goes to stdout. Diagnostics go to stderr as structured logs.
Exit code 0 means every ballot validated; validation problems still print
the full report but exit 1; structural problems (unreadable file, malformed
header or cells) abort with exit 1 before any report.

# Configuration

Optional settings, each a flag with an environment fallback:

  - MELLO_TITLE (--title): report banner title (default: "MELLO 2026")
  - LOG_LEVEL (--log-level): debug, info, warn, or error (default: info)
  - LOG_FORMAT (--log-format): text or json (default: text on a terminal)

# Architecture

The binary is a straight pipeline with one package per stage:

  - tsvparse: Forms TSV export → songs and ballots
  - tally: validation, aggregation, ranking
  - report: fixed-width text rendering
  - cliparse: flag and environment resolution
  - logger: slog setup (stderr, run-tagged)
  - models: shared domain types

See package documentation for each component.
*/
package main
