// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/MartinWickman/mello2026/models"
)

// Rank sorts aggregated results best-first, assigns tie-aware positions, and
// maps every place to its destination. The input slice is left untouched.
//
// Positions group ties and then skip: three songs tied at the top rank
// 1, 1, 1 and the next song ranks 4. Destinations ignore the grouping and
// follow the plain sorted place, so a tie group straddling a cutoff is split
// by it.
func Rank(results []models.SongResult) []models.SongResult {
	ranked := make([]models.SongResult, len(results))
	copy(ranked, results)

	// Stable sort: full ties keep their song order from the header.
	sort.SliceStable(ranked, func(i, j int) bool {
		return compareResults(ranked[i], ranked[j]) > 0
	})

	for i := range ranked {
		ranked[i].Place = i + 1 // 1-indexed place in sorted order
		if i > 0 && compareResults(ranked[i], ranked[i-1]) == 0 {
			ranked[i].Position = ranked[i-1].Position
		} else {
			ranked[i].Position = i + 1
		}
		ranked[i].Destination = destinationFor(ranked[i].Place)
	}

	return ranked
}

// compareResults orders two songs lexicographically and reports >0 when a
// outranks b, 0 when they are fully tied.
func compareResults(a, b models.SongResult) int {
	// 1. Higher total wins
	if a.Total != b.Total {
		return a.Total - b.Total
	}

	// 2. More votes at the higher level wins, from 10 points down to 1
	for _, level := range models.PointLevels {
		if a.VoteCounts[level] != b.VoteCounts[level] {
			return a.VoteCounts[level] - b.VoteCounts[level]
		}
	}

	return 0
}

// destinationFor maps a 1-based place in sorted order to its outcome tier.
func destinationFor(place int) models.Destination {
	switch {
	case place <= 2:
		return models.DestinationFinal
	case place <= 4:
		return models.DestinationAndraChansen
	default:
		return models.DestinationEliminated
	}
}
