package calculator

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/mmynk/tripwiser/internal/models"
)

// SortBy selects the leaderboard ordering.
type SortBy int

const (
	// SortGross orders by total gross strokes relative to par.
	SortGross SortBy = iota
	// SortNet orders by total net strokes relative to par.
	SortNet
)

// BuildLeaderboard aggregates scorecards by player name.
//
// A player row counts toward the board once it has at least one entered hole.
// Gross is the sum of entered strokes and net is gross minus handicap. Rows with
// equal scores keep the order players were first seen.
func BuildLeaderboard(scorecards []models.Scorecard, by SortBy) []models.LeaderboardEntry {
	var entries []*models.LeaderboardEntry
	byName := make(map[string]*models.LeaderboardEntry)

	for _, sc := range scorecards {
		cardPar := sum(sc.Pars)

		for _, player := range sc.Players {
			if !hasEnteredScore(player.Scores) {
				continue
			}

			gross := sum(player.Scores)
			net := gross - player.Handicap

			entry, exists := byName[player.Name]
			if !exists {
				entry = &models.LeaderboardEntry{Name: player.Name, BestGross: gross, BestNet: net}
				byName[player.Name] = entry
				entries = append(entries, entry)
			}

			entry.Rounds++
			entry.TotalGross += gross
			entry.TotalNet += net
			entry.TotalPar += cardPar
			entry.BestGross = min(entry.BestGross, gross)
			entry.BestNet = min(entry.BestNet, net)
		}
	}

	board := make([]models.LeaderboardEntry, len(entries))
	for i, e := range entries {
		board[i] = *e
	}

	slices.SortStableFunc(board, func(a, b models.LeaderboardEntry) int {
		return cmp.Compare(a.TotalGross-a.TotalPar, b.TotalGross-b.TotalPar)
	})
	if by == SortNet {
		slices.SortStableFunc(board, func(a, b models.LeaderboardEntry) int {
			return cmp.Compare(a.TotalNet-a.TotalPar, b.TotalNet-b.TotalPar)
		})
	}
	return board
}

// FormatVsPar renders strokes relative to par: "+3", "E" or "-2".
func FormatVsPar(strokes, par int) string {
	diff := strokes - par
	switch {
	case diff > 0:
		return "+" + strconv.Itoa(diff)
	case diff == 0:
		return "E"
	default:
		return strconv.Itoa(diff)
	}
}

func hasEnteredScore(scores []int) bool {
	for _, s := range scores {
		if s > 0 {
			return true
		}
	}
	return false
}

// sum adds the positive values; unentered holes are stored as 0.
func sum(values []int) int {
	total := 0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	return total
}
