// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by the parser, the tally, and
the report.

# Domain Types

  - Song: one contestant entry with its header position
  - Ballot: one voter's positional point assignments
  - SongResult: the full per-song tally (total, champions, haters, vote
    counts, position, place, destination)

# Constants

The point scheme is fixed:

	PointLevels = [10, 8, 6, 5, 4, 3, 2, 1]
	ExpectedSum = 39

A complete ballot uses each level exactly once, so its sum is always 39.

Destinations:

	DestinationFinal        = "FINAL"
	DestinationAndraChansen = "ANDRA CHANSEN"
	DestinationEliminated   = "Eliminated"

Ballots whose row never reaches the name column are attributed to
UnknownVoter ("Unknown").
*/
package models
