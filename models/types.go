package models

// Destination is the outcome tier a song is assigned after ranking.
type Destination string

// Outcome tiers. Assignment follows the plain sorted place, not the
// tie-aware position: places 1-2, 3-4, and 5 onward.
const (
	DestinationFinal        Destination = "FINAL"
	DestinationAndraChansen Destination = "ANDRA CHANSEN"
	DestinationEliminated   Destination = "Eliminated"
)

// PointLevels lists the valid point values in descending order. Tiebreaks
// compare per-level vote counts in exactly this order.
var PointLevels = []int{10, 8, 6, 5, 4, 3, 2, 1}

// ExpectedSum is the required total of a complete ballot: every valid point
// value used exactly once.
const ExpectedSum = 39

// MaxPoint and MinPoint are the extreme valid point values. Voters who give
// MaxPoint to a song are its champions, voters who give MinPoint its haters.
const (
	MaxPoint = 10
	MinPoint = 1
)

// UnknownVoter names ballots whose source row never reached the name column.
const UnknownVoter = "Unknown"

// ValidPoint reports whether p is one of the eight allowed point values.
func ValidPoint(p int) bool {
	for _, level := range PointLevels {
		if p == level {
			return true
		}
	}
	return false
}

// Song is one contestant entry, identified by its stable position in the
// header row.
type Song struct {
	Index int
	Name  string
}

// Ballot is one voter's point assignments, positionally aligned with the
// song list. Points may be shorter than the song count when the source row
// ended early; it is never longer.
type Ballot struct {
	Voter  string
	Points []int
}

// PointAt returns the ballot's value for the song at index i, and whether
// the ballot reaches that song at all.
func (b Ballot) PointAt(i int) (int, bool) {
	if i < 0 || i >= len(b.Points) {
		return 0, false
	}
	return b.Points[i], true
}

// Sum returns the total of all point values on the ballot.
func (b Ballot) Sum() int {
	total := 0
	for _, p := range b.Points {
		total += p
	}
	return total
}

// SongResult holds everything the tally computes for one song.
//
// Position is the tie-aware rank shown in the report: songs whose total and
// full vote-count breakdown match share a position, and the song after a tie
// group jumps to its plain place (a three-way tie for first yields 1, 1, 1,
// then 4). Place is always the 1-based index in sorted order and is what
// destinations are assigned from. The two are deliberately separate fields.
type SongResult struct {
	Song        string
	Index       int
	Total       int
	Champions   []string
	Haters      []string
	VoteCounts  map[int]int
	Position    int
	Place       int
	Destination Destination
}
