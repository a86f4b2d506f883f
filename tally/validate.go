// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MartinWickman/mello2026/models"
)

// ErrBallotsInvalid signals that at least one ballot failed validation. The
// tally and the report still run on whatever was voted; the error only
// drives the process exit code.
var ErrBallotsInvalid = errors.New("one or more ballots failed validation")

// Validate checks every ballot against the fixed point scheme and returns
// one human-readable message per violation, grouped by ballot in input
// order. An empty result means every ballot is a complete permutation of the
// valid point values.
func Validate(songs []models.Song, ballots []models.Ballot) []string {
	var violations []string
	for _, b := range ballots {
		violations = append(violations, validateBallot(songs, b)...)
	}
	return violations
}

// validateBallot reports, in order: wrong vote count, missing values,
// invalid values, duplicated values, wrong sum. One ballot can trip several
// at once.
func validateBallot(songs []models.Song, b models.Ballot) []string {
	var violations []string

	if len(b.Points) != len(songs) {
		violations = append(violations,
			fmt.Sprintf("%s: voted on %d songs, expected %d", b.Voter, len(b.Points), len(songs)))
	}

	seen := make(map[int]int, len(b.Points))
	for _, p := range b.Points {
		seen[p]++
	}

	var missing, invalid, duplicated []int
	for _, level := range models.PointLevels {
		if seen[level] == 0 {
			missing = append(missing, level)
		}
		if seen[level] > 1 {
			duplicated = append(duplicated, level)
		}
	}
	for p := range seen {
		if !models.ValidPoint(p) {
			invalid = append(invalid, p)
		}
	}
	sort.Ints(missing)
	sort.Ints(invalid)
	sort.Ints(duplicated)

	if len(missing) > 0 {
		violations = append(violations,
			fmt.Sprintf("%s: missing point values %v", b.Voter, missing))
	}
	if len(invalid) > 0 {
		violations = append(violations,
			fmt.Sprintf("%s: invalid point values %v", b.Voter, invalid))
	}
	if len(duplicated) > 0 {
		violations = append(violations,
			fmt.Sprintf("%s: duplicate points %v", b.Voter, duplicated))
	}

	if sum := b.Sum(); sum != models.ExpectedSum {
		violations = append(violations,
			fmt.Sprintf("%s: sum is %d, expected %d", b.Voter, sum, models.ExpectedSum))
	}

	return violations
}
