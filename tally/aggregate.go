// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/MartinWickman/mello2026/models"
)

// Aggregate computes the per-song totals, champion and hater lists, and the
// per-level vote-count breakdown. Results come back in song order; Rank does
// the sorting.
//
// Every ballot value lands in the song's total, but only valid values are
// counted in the level breakdown, so a stray 7 raises the total without ever
// helping in a tiebreak. Ballots shorter than the song list contribute
// nothing for the songs they never reached. Champions and haters keep ballot
// order.
func Aggregate(songs []models.Song, ballots []models.Ballot) []models.SongResult {
	results := make([]models.SongResult, len(songs))
	for i, song := range songs {
		r := models.SongResult{
			Song:       song.Name,
			Index:      song.Index,
			VoteCounts: make(map[int]int, len(models.PointLevels)),
		}
		for _, level := range models.PointLevels {
			r.VoteCounts[level] = 0
		}

		for _, b := range ballots {
			points, ok := b.PointAt(i)
			if !ok {
				continue
			}
			r.Total += points
			if models.ValidPoint(points) {
				r.VoteCounts[points]++
			}
			switch points {
			case models.MaxPoint:
				r.Champions = append(r.Champions, b.Voter)
			case models.MinPoint:
				r.Haters = append(r.Haters, b.Voter)
			}
		}

		results[i] = r
	}
	return results
}
