package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// SkinsResults is the adjudicated state of a skins game.
type SkinsResults struct {
	// Holes has one result per hole, 1..18 in order.
	Holes []models.HoleResult

	// Totals has an entry for every listed player, including those without skins.
	Totals map[models.MemberID]models.PlayerTotals

	// CarryoverRemaining is the skin value still unresolved after the last hole.
	// It is never paid out.
	CarryoverRemaining int
}

// ComputeSkinsResults walks the holes in order and awards skins.
//
// Only listed players with a positive score count on a hole. A hole nobody has
// scored is skipped without touching the carryover. An outright low score wins
// one skin plus the carryover; a tie at the low score adds one to the carryover.
// The game is not modified.
func ComputeSkinsResults(game models.SkinsGame) SkinsResults {
	totals := make(map[models.MemberID]models.PlayerTotals, len(game.Players))
	for _, p := range game.Players {
		totals[p] = models.PlayerTotals{}
	}

	results := SkinsResults{
		Holes:  make([]models.HoleResult, 0, models.HoleCount),
		Totals: totals,
	}

	carryover := 0
	for i := 0; i < models.HoleCount; i++ {
		result := models.HoleResult{Number: i + 1}

		var scores map[models.MemberID]int
		if i < len(game.Holes) {
			scores = game.Holes[i].Scores
		}

		low := lowScorers(game.Players, scores)
		switch len(low) {
		case 0:
			// not played yet
		case 1:
			result.Winner = low[0]
			result.SkinsValue = 1 + carryover

			t := totals[result.Winner]
			t.SkinsWon += result.SkinsValue
			t.Winnings = t.Winnings.Add(game.Stake.Mul(decimal.NewFromInt(int64(result.SkinsValue))))
			totals[result.Winner] = t

			carryover = 0
		default:
			carryover++
			result.CarriedOver = true
		}

		results.Holes = append(results.Holes, result)
	}

	results.CarryoverRemaining = carryover
	return results
}

// lowScorers returns the players sharing the lowest valid score on a hole.
// Zero and negative scores are treated as not entered.
func lowScorers(players []models.MemberID, scores map[models.MemberID]int) []models.MemberID {
	var low []models.MemberID
	best := 0
	seen := make(map[models.MemberID]bool, len(players))

	for _, p := range players {
		if seen[p] {
			continue
		}
		seen[p] = true

		score, ok := scores[p]
		if !ok || score <= 0 {
			continue
		}
		switch {
		case len(low) == 0 || score < best:
			best = score
			low = append(low[:0], p)
		case score == best:
			low = append(low, p)
		}
	}
	return low
}
