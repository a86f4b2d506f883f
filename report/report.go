// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/MartinWickman/mello2026/models"
)

const (
	bannerWidth = 60
	tableWidth  = 110
)

// WriteValidationErrors prints the violation block that precedes the
// results, one bullet per message, followed by a blank line. Writes nothing
// when there are no violations.
func WriteValidationErrors(w io.Writer, violations []string) {
	if len(violations) == 0 {
		return
	}
	fmt.Fprintln(w, "VALIDATION ERRORS:")
	for _, v := range violations {
		fmt.Fprintf(w, "  - %s\n", v)
	}
	fmt.Fprintln(w)
}

// WriteResults prints the ranked leaderboard and the per-voter listing.
// Pure formatting: ordering, positions, and destinations all come from the
// caller, already computed.
func WriteResults(w io.Writer, title string, songs []models.Song, ballots []models.Ballot, results []models.SongResult) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "%s - RESULTS (%d voters, %d songs)\n", title, len(ballots), len(songs))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-4s %-40s %4s  %3s  %-15s  Champions (10p) / Haters (1p)\n",
		"#", "Song", "Pts", "10p", "Destination")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, r := range results {
		fmt.Fprintf(w, "%-4d %-40s %4d  %3d  %-15s  10p: %s | 1p: %s\n",
			r.Position, r.Song, r.Total, r.VoteCounts[models.MaxPoint], string(r.Destination),
			nameList(r.Champions), nameList(r.Haters))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "VOTER VALIDATION")
	fmt.Fprintln(w, banner)
	for _, b := range ballots {
		fmt.Fprintf(w, "  %-25s sum=%d  points=%v\n", b.Voter, b.Sum(), b.Points)
	}
}

// nameList joins voter names for the champions and haters column.
func nameList(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
