package api

// Round is a day of golf with its random pairings.
type Round struct {
	ID         string     `json:"id"`
	TripID     string     `json:"tripId"`
	Name       string     `json:"name"`
	CourseName string     `json:"courseName,omitempty"`
	Date       string     `json:"date,omitempty"`
	GroupSize  int        `json:"groupSize"`
	Groups     [][]string `json:"groups"`
	CreatedAt  int64      `json:"createdAt"`
}

type CreateRoundRequest struct {
	TripID     string `json:"tripId"`
	Name       string `json:"name"`
	CourseName string `json:"courseName,omitempty"`
	Date       string `json:"date,omitempty"`
	GroupSize  int    `json:"groupSize"`
}

type CreateRoundResponse struct {
	Round *Round `json:"round"`
}

type ReshuffleRoundRequest struct {
	TripID  string `json:"tripId"`
	RoundID string `json:"roundId"`

	// GroupSize replaces the round's group size when non-zero.
	GroupSize int `json:"groupSize,omitempty"`
}

type ReshuffleRoundResponse struct {
	Round *Round `json:"round"`
}

type ListRoundsRequest struct {
	TripID string `json:"tripId"`
}

type ListRoundsResponse struct {
	Rounds []*Round `json:"rounds"`
}

type DeleteRoundRequest struct {
	TripID  string `json:"tripId"`
	RoundID string `json:"roundId"`
}

type DeleteRoundResponse struct{}
