package models

// Round represents one round of golf and its play groups.
type Round struct {
	// ID is the unique identifier for the round (UUID format).
	ID RoundID

	// TripID is the trip this round belongs to.
	TripID TripID

	// Name is the display name (e.g., "Day 1 - Morning").
	Name string

	// CourseName and Date are free text shown alongside the pairings.
	CourseName string
	Date       string

	// GroupSize is the target number of players per group (>= 1).
	GroupSize int

	// Groups is the partition of the roster into play groups.
	// Every member appears in exactly one group; the last group may be smaller.
	Groups [][]MemberID

	// CreatedAt is the Unix timestamp when the round was created.
	CreatedAt int64
}
