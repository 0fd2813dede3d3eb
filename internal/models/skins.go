package models

import "github.com/shopspring/decimal"

// HoleCount is the number of holes in a skins game.
const HoleCount = 18

// DefaultStake is the per-skin stake used when a game is created without one.
var DefaultStake = decimal.NewFromInt(5)

// SkinsGame represents a skins game between trip members.
type SkinsGame struct {
	// ID is the unique identifier for the game (UUID format).
	ID GameID

	// TripID is the trip this game belongs to.
	TripID TripID

	// Name is the display name of the game.
	Name string

	// Players lists the members competing, in display order.
	Players []MemberID

	// Stake is the money value of one skin.
	Stake decimal.Decimal

	// Holes holds one entry per hole, numbered 1..18 in order.
	Holes []Hole

	// CreatedAt is the Unix timestamp when the game was created.
	CreatedAt int64
}

// Hole holds the strokes entered for one hole.
type Hole struct {
	Number int
	// Scores maps member to strokes. A missing entry means not yet entered.
	Scores map[MemberID]int
}

// NewHoles returns an empty card of HoleCount holes.
func NewHoles() []Hole {
	holes := make([]Hole, HoleCount)
	for i := range holes {
		holes[i] = Hole{Number: i + 1, Scores: map[MemberID]int{}}
	}
	return holes
}

// HoleResult is the adjudicated outcome of one hole.
type HoleResult struct {
	Number int
	// Winner is empty when nobody won the hole outright.
	Winner      MemberID
	SkinsValue  int
	CarriedOver bool
}

// PlayerTotals accumulates a player's skins across the game.
type PlayerTotals struct {
	SkinsWon int
	Winnings decimal.Decimal
}
