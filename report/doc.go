// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders the tally as fixed-width plain text.

The layout is three blocks on one io.Writer:

 1. WriteValidationErrors: a "VALIDATION ERRORS:" list, only when there are
    violations, separated from the results by a blank line.
 2. The leaderboard: a banner with the title and counts, then one row per
    song with its tie-aware position, total, number of 10-point votes,
    destination, and the champion and hater names ("None" when a list is
    empty).
 3. "VOTER VALIDATION": every ballot with its sum and raw point sequence, so
    a reader can check any voter's line against the validation messages.

The package computes nothing; it prints what the tally package produced, in
the order given.
*/
package report
