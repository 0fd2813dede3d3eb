package service

import (
	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/pkg/api"
)

func toAPITrip(trip *models.Trip) *api.Trip {
	members := make([]*api.Member, len(trip.Members))
	for i := range trip.Members {
		members[i] = toAPIMember(&trip.Members[i])
	}
	return &api.Trip{
		ID:          string(trip.ID),
		OwnerID:     string(trip.OwnerID),
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Members:     members,
		CreatedAt:   trip.CreatedAt,
	}
}

func toAPIMember(m *models.Member) *api.Member {
	return &api.Member{
		ID:       string(m.ID),
		TripID:   string(m.TripID),
		UserID:   string(m.UserID),
		Name:     m.Name,
		Handicap: m.Handicap,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          string(e.ID),
		TripID:      string(e.TripID),
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      string(e.PaidBy),
		SplitAmong:  models.Strings(e.SplitAmong),
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIRound(r *models.Round) *api.Round {
	groups := make([][]string, len(r.Groups))
	for i, g := range r.Groups {
		groups[i] = models.Strings(g)
	}
	return &api.Round{
		ID:         string(r.ID),
		TripID:     string(r.TripID),
		Name:       r.Name,
		CourseName: r.CourseName,
		Date:       r.Date,
		GroupSize:  r.GroupSize,
		Groups:     groups,
		CreatedAt:  r.CreatedAt,
	}
}

func toAPISkinsGame(g *models.SkinsGame) *api.SkinsGame {
	holes := make([]*api.Hole, len(g.Holes))
	for i, h := range g.Holes {
		scores := make(map[string]int, len(h.Scores))
		for id, strokes := range h.Scores {
			scores[string(id)] = strokes
		}
		holes[i] = &api.Hole{Number: h.Number, Scores: scores}
	}
	return &api.SkinsGame{
		ID:        string(g.ID),
		TripID:    string(g.TripID),
		Name:      g.Name,
		Players:   models.Strings(g.Players),
		Stake:     g.Stake,
		Holes:     holes,
		CreatedAt: g.CreatedAt,
	}
}

func toAPISkinsResults(players []models.MemberID, res calculator.SkinsResults) *api.SkinsResults {
	holes := make([]*api.HoleResult, len(res.Holes))
	for i, h := range res.Holes {
		holes[i] = &api.HoleResult{
			Number:      h.Number,
			Winner:      string(h.Winner),
			SkinsValue:  h.SkinsValue,
			CarriedOver: h.CarriedOver,
		}
	}
	totals := make([]*api.PlayerTotals, 0, len(players))
	for _, p := range players {
		t := res.Totals[p]
		totals = append(totals, &api.PlayerTotals{
			MemberID: string(p),
			SkinsWon: t.SkinsWon,
			Winnings: t.Winnings,
		})
	}
	return &api.SkinsResults{
		Holes:              holes,
		Totals:             totals,
		CarryoverRemaining: res.CarryoverRemaining,
	}
}

func toAPIScorecard(c *models.Scorecard) *api.Scorecard {
	par := 0
	for _, p := range c.Pars {
		par += p
	}

	players := make([]*api.ScorecardPlayer, len(c.Players))
	for i, p := range c.Players {
		gross, playedPar := 0, 0
		for hole, strokes := range p.Scores {
			if strokes <= 0 {
				continue
			}
			gross += strokes
			if hole < len(c.Pars) {
				playedPar += c.Pars[hole]
			}
		}
		players[i] = &api.ScorecardPlayer{
			MemberID: string(p.MemberID),
			Name:     p.Name,
			Handicap: p.Handicap,
			Scores:   p.Scores,
			Gross:    gross,
			Net:      gross - p.Handicap,
			VsPar:    calculator.FormatVsPar(gross, playedPar),
		}
	}

	return &api.Scorecard{
		ID:         string(c.ID),
		TripID:     string(c.TripID),
		CourseName: c.CourseName,
		Date:       c.Date,
		Pars:       c.Pars,
		TotalPar:   par,
		Players:    players,
		CreatedAt:  c.CreatedAt,
	}
}

func toAPIItineraryItem(item *models.ItineraryItem) *api.ItineraryItem {
	return &api.ItineraryItem{
		ID:          string(item.ID),
		TripID:      string(item.TripID),
		Date:        item.Date,
		Time:        item.Time,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		SortOrder:   item.SortOrder,
		CreatedAt:   item.CreatedAt,
	}
}
