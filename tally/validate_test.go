// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"testing"

	"github.com/MartinWickman/mello2026/models"
	"github.com/MartinWickman/mello2026/testutil"
)

var eightSongs = testutil.Songs("A", "B", "C", "D", "E", "F", "G", "H")

func assertMessages(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d violations, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Violation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestValidate_CompleteBallots(t *testing.T) {
	// Any permutation of the eight values is a complete ballot.
	ballots := []models.Ballot{
		testutil.Ballot("Anna", 10, 8, 6, 5, 4, 3, 2, 1),
		testutil.Ballot("Bertil", 1, 2, 3, 4, 5, 6, 8, 10),
		testutil.Ballot("Cilla", 5, 10, 1, 8, 3, 6, 2, 4),
	}

	violations := Validate(eightSongs, ballots)
	if len(violations) != 0 {
		t.Errorf("Expected no violations, got %v", violations)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		points []int
		want   []string
	}{
		{
			// Swapping the 1 for a second 2 keeps eight votes but breaks
			// three rules at once.
			name:   "duplicate instead of lowest value",
			points: []int{10, 8, 6, 5, 4, 3, 2, 2},
			want: []string{
				"Kim: missing point values [1]",
				"Kim: duplicate points [2]",
				"Kim: sum is 40, expected 39",
			},
		},
		{
			name:   "too few votes",
			points: []int{10, 8, 6, 5, 4, 3},
			want: []string{
				"Kim: voted on 6 songs, expected 8",
				"Kim: missing point values [1 2]",
				"Kim: sum is 36, expected 39",
			},
		},
		{
			name:   "value outside the scheme",
			points: []int{10, 8, 6, 5, 4, 3, 2, 7},
			want: []string{
				"Kim: missing point values [1]",
				"Kim: invalid point values [7]",
				"Kim: sum is 45, expected 39",
			},
		},
		{
			// A repeated invalid value is reported as invalid, not as a
			// duplicate: the duplicate check covers valid levels only.
			name:   "repeated invalid value",
			points: []int{10, 8, 6, 5, 4, 3, 7, 7},
			want: []string{
				"Kim: missing point values [1 2]",
				"Kim: invalid point values [7]",
				"Kim: sum is 50, expected 39",
			},
		},
		{
			name:   "several missing and duplicated",
			points: []int{10, 10, 8, 8, 6, 5, 4, 3},
			want: []string{
				"Kim: missing point values [1 2]",
				"Kim: duplicate points [8 10]",
				"Kim: sum is 54, expected 39",
			},
		},
		{
			name:   "empty ballot",
			points: []int{},
			want: []string{
				"Kim: voted on 0 songs, expected 8",
				"Kim: missing point values [1 2 3 4 5 6 8 10]",
				"Kim: sum is 0, expected 39",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(eightSongs, []models.Ballot{testutil.Ballot("Kim", tt.points...)})
			assertMessages(t, got, tt.want)
		})
	}
}

func TestValidate_GroupsByBallot(t *testing.T) {
	ballots := []models.Ballot{
		testutil.Ballot("Anna", 10, 8, 6, 5, 4, 3, 2, 1),
		testutil.Ballot("Bertil", 10, 8, 6, 5, 4, 3, 2, 2),
		testutil.Ballot("Cilla", 10, 8, 6, 5, 4, 3, 2, 7),
	}

	got := Validate(eightSongs, ballots)
	want := []string{
		"Bertil: missing point values [1]",
		"Bertil: duplicate points [2]",
		"Bertil: sum is 40, expected 39",
		"Cilla: missing point values [1]",
		"Cilla: invalid point values [7]",
		"Cilla: sum is 45, expected 39",
	}
	assertMessages(t, got, want)
}

func TestValidate_NoBallots(t *testing.T) {
	if got := Validate(eightSongs, nil); len(got) != 0 {
		t.Errorf("Expected no violations for no ballots, got %v", got)
	}
}
