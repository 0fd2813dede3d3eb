package api

// Trip is a trip with its roster.
type Trip struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Destination string    `json:"destination,omitempty"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Members     []*Member `json:"members"`
	CreatedAt   int64     `json:"createdAt"`
}

// Member is one person on a trip roster.
type Member struct {
	ID       string `json:"id"`
	TripID   string `json:"tripId"`
	UserID   string `json:"userId,omitempty"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

// MemberInput describes a roster entry to create.
type MemberInput struct {
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
	UserID   string `json:"userId,omitempty"`
}

type CreateTripRequest struct {
	Name        string         `json:"name"`
	Destination string         `json:"destination,omitempty"`
	StartDate   string         `json:"startDate,omitempty"`
	EndDate     string         `json:"endDate,omitempty"`
	Members     []*MemberInput `json:"members"`

	// JoinAsMember adds the caller to the roster, linked to their user ID.
	JoinAsMember *MemberInput `json:"joinAsMember,omitempty"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

// UpdateTripRequest replaces a trip's details. The roster is edited through
// the member procedures.
type UpdateTripRequest struct {
	TripID      string `json:"tripId"`
	Name        string `json:"name"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripID string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddMemberRequest struct {
	TripID   string `json:"tripId"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`

	// UserID links the new member to an account. Only the trip owner may set it.
	UserID string `json:"userId,omitempty"`
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

type UpdateMemberRequest struct {
	TripID   string `json:"tripId"`
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`

	// UserID, when set, relinks the member ("" unlinks). Only the trip owner
	// may change it. Nil keeps the current link.
	UserID *string `json:"userId,omitempty"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type RemoveMemberRequest struct {
	TripID   string `json:"tripId"`
	MemberID string `json:"memberId"`
}

type RemoveMemberResponse struct{}
