package api

// Scorecard is one course's card for a group of players.
type Scorecard struct {
	ID         string             `json:"id"`
	TripID     string             `json:"tripId"`
	CourseName string             `json:"courseName"`
	Date       string             `json:"date,omitempty"`
	Pars       []int              `json:"pars"`
	TotalPar   int                `json:"totalPar"`
	Players    []*ScorecardPlayer `json:"players"`
	CreatedAt  int64              `json:"createdAt"`
}

// ScorecardPlayer is a player's row. Gross, Net and VsPar cover entered
// holes only.
type ScorecardPlayer struct {
	MemberID string `json:"memberId,omitempty"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
	Scores   []int  `json:"scores"`
	Gross    int    `json:"gross"`
	Net      int    `json:"net"`
	VsPar    string `json:"vsPar"`
}

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Rounds     int    `json:"rounds"`
	TotalGross int    `json:"totalGross"`
	TotalNet   int    `json:"totalNet"`
	TotalPar   int    `json:"totalPar"`
	GrossVsPar string `json:"grossVsPar"`
	NetVsPar   string `json:"netVsPar"`
	BestGross  int    `json:"bestGross"`
	BestNet    int    `json:"bestNet"`
}

type CreateScorecardRequest struct {
	TripID     string `json:"tripId"`
	CourseName string `json:"courseName"`
	Date       string `json:"date,omitempty"`

	// Pars defaults to a par-72 layout when empty.
	Pars []int `json:"pars,omitempty"`

	// MemberIDs defaults to the whole roster when empty.
	MemberIDs []string `json:"memberIds,omitempty"`
}

type CreateScorecardResponse struct {
	Scorecard *Scorecard `json:"scorecard"`
}

type GetScorecardRequest struct {
	TripID      string `json:"tripId"`
	ScorecardID string `json:"scorecardId"`
}

type GetScorecardResponse struct {
	Scorecard *Scorecard `json:"scorecard"`
}

type DeleteScorecardRequest struct {
	TripID      string `json:"tripId"`
	ScorecardID string `json:"scorecardId"`
}

type DeleteScorecardResponse struct{}

type UpdateScoresRequest struct {
	TripID      string `json:"tripId"`
	ScorecardID string `json:"scorecardId"`
	MemberID    string `json:"memberId"`

	// Scores replaces the player's row; 0 marks a hole not yet played.
	Scores []int `json:"scores"`
}

type UpdateScoresResponse struct {
	Scorecard *Scorecard `json:"scorecard"`
}

type ListScorecardsRequest struct {
	TripID string `json:"tripId"`
}

type ListScorecardsResponse struct {
	Scorecards []*Scorecard `json:"scorecards"`
}

type GetLeaderboardRequest struct {
	TripID string `json:"tripId"`

	// SortBy is "gross" (default) or "net".
	SortBy string `json:"sortBy,omitempty"`
}

type GetLeaderboardResponse struct {
	Entries []*LeaderboardEntry `json:"entries"`
}
