package api

import "github.com/shopspring/decimal"

// SkinsGame is a skins game with its raw per-hole scores.
type SkinsGame struct {
	ID        string          `json:"id"`
	TripID    string          `json:"tripId"`
	Name      string          `json:"name"`
	Players   []string        `json:"players"`
	Stake     decimal.Decimal `json:"stake"`
	Holes     []*Hole         `json:"holes"`
	CreatedAt int64           `json:"createdAt"`
}

// Hole holds the strokes entered so far, keyed by member ID.
type Hole struct {
	Number int            `json:"number"`
	Scores map[string]int `json:"scores"`
}

type HoleResult struct {
	Number      int    `json:"number"`
	Winner      string `json:"winner,omitempty"`
	SkinsValue  int    `json:"skinsValue"`
	CarriedOver bool   `json:"carriedOver"`
}

type PlayerTotals struct {
	MemberID string          `json:"memberId"`
	SkinsWon int             `json:"skinsWon"`
	Winnings decimal.Decimal `json:"winnings"`
}

// SkinsResults is the adjudicated state of a game. Totals follow the
// game's player order.
type SkinsResults struct {
	Holes              []*HoleResult   `json:"holes"`
	Totals             []*PlayerTotals `json:"totals"`
	CarryoverRemaining int             `json:"carryoverRemaining"`
}

type CreateSkinsGameRequest struct {
	TripID  string   `json:"tripId"`
	Name    string   `json:"name"`
	Players []string `json:"players"`

	// Stake per skin; 5 when null.
	Stake decimal.NullDecimal `json:"stake"`
}

type CreateSkinsGameResponse struct {
	Game *SkinsGame `json:"game"`
}

type RecordScoreRequest struct {
	TripID   string `json:"tripId"`
	GameID   string `json:"gameId"`
	Hole     int    `json:"hole"`
	MemberID string `json:"memberId"`

	// Strokes of 0 clears the entry.
	Strokes int `json:"strokes"`
}

type RecordScoreResponse struct {
	Game    *SkinsGame    `json:"game"`
	Results *SkinsResults `json:"results"`
}

type GetSkinsResultsRequest struct {
	TripID string `json:"tripId"`
	GameID string `json:"gameId"`
}

type GetSkinsResultsResponse struct {
	Game    *SkinsGame    `json:"game"`
	Results *SkinsResults `json:"results"`
}

type ListSkinsGamesRequest struct {
	TripID string `json:"tripId"`
}

type ListSkinsGamesResponse struct {
	Games []*SkinsGame `json:"games"`
}

type DeleteSkinsGameRequest struct {
	TripID string `json:"tripId"`
	GameID string `json:"gameId"`
}

type DeleteSkinsGameResponse struct{}
