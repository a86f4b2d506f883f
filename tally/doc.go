// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally validates ballots and turns them into a ranked result list.

# Validation

Validate checks every ballot against the fixed scheme (each of 10, 8, 6, 5,
4, 3, 2, 1 used exactly once) and returns one message per violation:

	violations := tally.Validate(songs, ballots)

Violations never stop the count. Callers print them, run the tally anyway,
and signal the failure through ErrBallotsInvalid and the exit code.

# Aggregation

Aggregate computes per song: the point total, the voters who gave 10
(champions), the voters who gave 1 (haters), and how many ballots assigned
each valid level:

	results := tally.Aggregate(songs, ballots)

# Ranking

Rank sorts by total points and breaks ties lexicographically on the vote
counts at 10, 8, 6, 5, 4, 3, 2, 1. Songs still tied after all that share a
tie-aware position (1, 1, 1, 4) but keep distinct places, and destinations
follow the place alone:

	place 1-2  → FINAL
	place 3-4  → ANDRA CHANSEN
	place 5+   → Eliminated

A tie group sitting on a cutoff is split by it.
*/
package tally
