package models

// Trip represents a golf trip and its roster.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID TripID

	// OwnerID is the user who created the trip. The owner always has access.
	OwnerID UserID

	// Name is the display name of the trip (e.g., "Pinehurst 2026").
	Name string

	// Destination is free text describing where the trip goes.
	Destination string

	// StartDate and EndDate are ISO dates (YYYY-MM-DD). Either may be empty.
	StartDate string
	EndDate   string

	// Members is the trip roster in the order members were added.
	Members []Member

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// MemberIDs returns the roster identifiers in roster order.
func (t *Trip) MemberIDs() []MemberID {
	ids := make([]MemberID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.ID
	}
	return ids
}

// HasMember reports whether id is on the roster.
func (t *Trip) HasMember(id MemberID) bool {
	_, ok := t.Member(id)
	return ok
}

// Member looks up a roster entry by id.
func (t *Trip) Member(id MemberID) (Member, bool) {
	for _, m := range t.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Member represents a participant within a trip.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID MemberID

	// TripID is the trip this member belongs to.
	TripID TripID

	// UserID links the member to an account. Empty for guests without a login.
	UserID UserID

	// Name is the display name used on pairings, skins and scorecards.
	Name string

	// Handicap is a signed stroke adjustment subtracted from gross scores.
	Handicap int
}
