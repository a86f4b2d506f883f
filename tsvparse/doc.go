// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tsvparse reads Google Forms TSV exports into songs and ballots.

# Input Shape

The first row is the header. Song columns are the cells starting with
"Lyssna"; each embeds the song's display name in square brackets:

	Lyssna, njut och poängsätt!  [Aurora / Skyline]

The voter name column is the first header cell containing "namn"
(case-insensitive). All other columns (timestamps, free-text questions) are
ignored.

# Data Rows

Every later row is one submission. Rows with a blank first cell were never
submitted and are skipped. Point cells accept an optional "p" unit suffix:
"10", "10p", and "10 p" all mean ten points. A row may end before the last
song column; the ballot then simply has no value for the remaining songs.
Rows that stop before the name column are attributed to "Unknown".

# Errors

Parsing is strict about structure: a header without song columns
(ErrNoSongColumns) or without a name column (ErrNoNameColumn), a song header
without a bracketed name, and any non-numeric or empty point cell all abort
the parse. Errors from data rows name the 1-based row and the song.

Content problems (wrong sums, duplicate points) are not this package's job;
the tally package reports those without aborting.
*/
package tsvparse
