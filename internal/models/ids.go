package models

// UserID identifies an authenticated account. Its value comes from the token subject.
type UserID string

// TripID identifies a trip record.
type TripID string

// MemberID identifies a participant within a trip.
type MemberID string

// ExpenseID identifies an expense record.
type ExpenseID string

// RoundID identifies a round (pairing) record.
type RoundID string

// GameID identifies a skins game record.
type GameID string

// ScorecardID identifies a scorecard record.
type ScorecardID string

// MemberIDs converts plain strings to member identifiers.
func MemberIDs(ids []string) []MemberID {
	out := make([]MemberID, len(ids))
	for i, id := range ids {
		out[i] = MemberID(id)
	}
	return out
}

// Strings converts member identifiers back to plain strings.
func Strings(ids []MemberID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// ItemID identifies an itinerary item.
type ItemID string
