package models

// DefaultPars is a par-72 layout used when a scorecard is created without pars.
var DefaultPars = []int{4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5}

// Scorecard records strokes per hole for a group of players on one course.
type Scorecard struct {
	ID         ScorecardID
	TripID     TripID
	CourseName string
	Date       string

	// Pars holds the par of each hole in order.
	Pars []int

	Players []ScorecardPlayer

	CreatedAt int64
}

// ScorecardPlayer is one row of a scorecard.
type ScorecardPlayer struct {
	// MemberID links the row to the roster. Empty for players added by name only.
	MemberID MemberID
	Name     string
	Handicap int
	// Scores holds strokes per hole; 0 means the hole has not been entered.
	Scores []int
}

// LeaderboardEntry aggregates a player's scorecards across a trip.
type LeaderboardEntry struct {
	Name       string
	Rounds     int
	TotalGross int
	TotalNet   int
	TotalPar   int
	BestGross  int
	BestNet    int
}
