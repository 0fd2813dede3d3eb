package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
)

func TestComputeSkinsResults(t *testing.T) {
	t.Run("sole low score wins the hole", func(t *testing.T) {
		game := skinsGame("5", "A", "B", "C", "D")
		game.Holes[0].Scores = scores("A", 3, "B", 4, "C", 4, "D", 5)

		res := ComputeSkinsResults(game)

		assert.Equal(t, models.HoleResult{Number: 1, Winner: "A", SkinsValue: 1}, res.Holes[0])
		assert.Equal(t, 1, res.Totals["A"].SkinsWon)
		assert.True(t, res.Totals["A"].Winnings.Equal(decimal.NewFromInt(5)))
	})

	t.Run("tie carries over to the next winner", func(t *testing.T) {
		game := skinsGame("5", "A", "B", "C", "D")
		game.Holes[0].Scores = scores("A", 5, "B", 4, "C", 4, "D", 6)
		game.Holes[1].Scores = scores("A", 3, "B", 4, "C", 4, "D", 5)

		res := ComputeSkinsResults(game)

		assert.Equal(t, models.HoleResult{Number: 1, CarriedOver: true}, res.Holes[0])
		assert.Equal(t, models.HoleResult{Number: 2, Winner: "A", SkinsValue: 2}, res.Holes[1])
		assert.Equal(t, 2, res.Totals["A"].SkinsWon)
		assert.True(t, res.Totals["A"].Winnings.Equal(decimal.NewFromInt(10)))
		assert.Zero(t, res.CarryoverRemaining)
	})

	t.Run("unplayed hole keeps the carryover", func(t *testing.T) {
		game := skinsGame("2", "A", "B")
		game.Holes[0].Scores = scores("A", 4, "B", 4)
		// hole 2 has no scores
		game.Holes[2].Scores = scores("A", 4, "B", 3)

		res := ComputeSkinsResults(game)

		assert.Equal(t, models.HoleResult{Number: 2}, res.Holes[1])
		assert.Equal(t, models.HoleResult{Number: 3, Winner: "B", SkinsValue: 2}, res.Holes[2])
		assert.True(t, res.Totals["B"].Winnings.Equal(decimal.NewFromInt(4)))
	})

	t.Run("invalid and unlisted scores are ignored", func(t *testing.T) {
		game := skinsGame("5", "A", "B")
		game.Holes[0].Scores = scores("A", 0, "B", 5, "Z", 2)
		game.Holes[1].Scores = scores("A", -3, "B", 0)

		res := ComputeSkinsResults(game)

		assert.Equal(t, models.HoleResult{Number: 1, Winner: "B", SkinsValue: 1}, res.Holes[0])
		assert.Equal(t, models.HoleResult{Number: 2}, res.Holes[1])
		assert.NotContains(t, res.Totals, models.MemberID("Z"))
	})

	t.Run("tie on the last hole is never paid", func(t *testing.T) {
		game := skinsGame("1", "A", "B")
		for i := range game.Holes {
			game.Holes[i].Scores = scores("A", 4, "B", 4)
		}
		game.Holes[0].Scores = scores("A", 3, "B", 4)

		res := ComputeSkinsResults(game)

		assert.Equal(t, 1, res.Totals["A"].SkinsWon)
		assert.Zero(t, res.Totals["B"].SkinsWon)
		assert.Equal(t, 17, res.CarryoverRemaining)
		assert.True(t, res.Holes[17].CarriedOver)
	})

	t.Run("every player has totals", func(t *testing.T) {
		res := ComputeSkinsResults(skinsGame("5", "A", "B", "C"))

		require.Len(t, res.Holes, models.HoleCount)
		assert.Len(t, res.Totals, 3)
		for _, total := range res.Totals {
			assert.Zero(t, total.SkinsWon)
			assert.True(t, total.Winnings.IsZero())
		}
	})

	t.Run("short hole list is padded", func(t *testing.T) {
		game := skinsGame("5", "A", "B")
		game.Holes = game.Holes[:1]
		game.Holes[0].Scores = scores("A", 3, "B", 4)

		res := ComputeSkinsResults(game)

		require.Len(t, res.Holes, models.HoleCount)
		assert.Equal(t, "A", string(res.Holes[0].Winner))
		assert.Equal(t, models.HoleResult{Number: 18}, res.Holes[17])
	})
}

func TestComputeSkinsResultsConservation(t *testing.T) {
	game := skinsGame("5", "A", "B", "C")
	pattern := [][]int{
		{4, 4, 5}, {3, 4, 4}, {5, 5, 5}, {4, 5, 3}, {4, 4, 4}, {4, 4, 6},
		{3, 3, 4}, {5, 4, 4}, {4, 3, 5}, {4, 4, 4}, {3, 4, 5}, {5, 4, 3},
		{4, 4, 4}, {4, 4, 4}, {4, 5, 5}, {3, 3, 3}, {4, 4, 5}, {5, 4, 4},
	}
	for i, p := range pattern {
		game.Holes[i].Scores = scores("A", p[0], "B", p[1], "C", p[2])
	}

	res := ComputeSkinsResults(game)

	won := 0
	for _, total := range res.Totals {
		won += total.SkinsWon
	}
	assert.Equal(t, models.HoleCount, won+res.CarryoverRemaining)
}

func TestComputeSkinsResultsDoesNotMutate(t *testing.T) {
	game := skinsGame("5", "A", "B")
	game.Holes[0].Scores = scores("A", 3, "B", 4)
	game.Holes[1].Scores = scores("A", 4, "B", 4)

	first := ComputeSkinsResults(game)
	second := ComputeSkinsResults(game)

	assert.Equal(t, first, second)
	assert.Equal(t, scores("A", 3, "B", 4), game.Holes[0].Scores)
	assert.Equal(t, []models.MemberID{"A", "B"}, game.Players)
}

func skinsGame(stake string, players ...string) models.SkinsGame {
	return models.SkinsGame{
		Players: models.MemberIDs(players),
		Stake:   decimal.RequireFromString(stake),
		Holes:   models.NewHoles(),
	}
}

// scores builds a hole's score map from alternating member/strokes pairs.
func scores(pairs ...any) map[models.MemberID]int {
	out := make(map[models.MemberID]int, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[models.MemberID(pairs[i].(string))] = pairs[i+1].(int)
	}
	return out
}
