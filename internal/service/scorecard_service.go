package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

const (
	minPar = 3
	maxPar = 6
)

// ScorecardService implements the Connect ScorecardService.
type ScorecardService struct {
	apiconnect.UnimplementedScorecardServiceHandler
	store storage.Store
}

// NewScorecardService creates a new ScorecardService with the given storage backend.
func NewScorecardService(store storage.Store) *ScorecardService {
	return &ScorecardService{store: store}
}

func validatePars(pars []int) error {
	if len(pars) != models.HoleCount {
		return invalidArgument("pars must have %d holes, got %d", models.HoleCount, len(pars))
	}
	for i, p := range pars {
		if p < minPar || p > maxPar {
			return invalidArgument("par for hole %d must be between %d and %d, got %d", i+1, minPar, maxPar, p)
		}
	}
	return nil
}

func validateScores(scores []int) error {
	if len(scores) != models.HoleCount {
		return invalidArgument("scores must have %d holes, got %d", models.HoleCount, len(scores))
	}
	for i, s := range scores {
		if s < 0 || s > maxStrokes {
			return invalidArgument("score for hole %d must be between 0 and %d, got %d", i+1, maxStrokes, s)
		}
	}
	return nil
}

// CreateScorecard opens a blank card for roster members. Each player row
// snapshots the member's name and handicap at creation time.
func (s *ScorecardService) CreateScorecard(ctx context.Context, req *connect.Request[api.CreateScorecardRequest]) (*connect.Response[api.CreateScorecardResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("CreateScorecard request received",
		"trip_id", tripID,
		"course", req.Msg.CourseName,
		"players_count", len(req.Msg.MemberIDs),
	)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	course := strings.TrimSpace(req.Msg.CourseName)
	if course == "" {
		return nil, invalidArgument("course name required")
	}

	pars := models.DefaultPars
	if len(req.Msg.Pars) > 0 {
		if err := validatePars(req.Msg.Pars); err != nil {
			return nil, err
		}
		pars = req.Msg.Pars
	}

	ids := trip.MemberIDs()
	if len(req.Msg.MemberIDs) > 0 {
		if ids, err = rosterIDs(trip, req.Msg.MemberIDs); err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, invalidArgument("a scorecard needs at least one player")
	}

	byID := make(map[models.MemberID]models.Member, len(trip.Members))
	for _, m := range trip.Members {
		byID[m.ID] = m
	}
	players := make([]models.ScorecardPlayer, len(ids))
	for i, id := range ids {
		m := byID[id]
		players[i] = models.ScorecardPlayer{
			MemberID: id,
			Name:     m.Name,
			Handicap: m.Handicap,
			Scores:   make([]int, models.HoleCount),
		}
	}

	card := &models.Scorecard{
		TripID:     tripID,
		CourseName: course,
		Date:       req.Msg.Date,
		Pars:       append([]int(nil), pars...),
		Players:    players,
	}
	if err := s.store.CreateScorecard(ctx, card); err != nil {
		slog.Error("CreateScorecard failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Scorecard created", "trip_id", tripID, "scorecard_id", card.ID)
	return connect.NewResponse(&api.CreateScorecardResponse{Scorecard: toAPIScorecard(card)}), nil
}

// loadCard authorizes the caller and fetches a scorecard that belongs to the trip.
func (s *ScorecardService) loadCard(ctx context.Context, tripID models.TripID, cardID models.ScorecardID) (*models.Scorecard, error) {
	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}
	card, err := s.store.GetScorecard(ctx, cardID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if card.TripID != tripID {
		return nil, notInTrip("scorecard", string(cardID))
	}
	return card, nil
}

// GetScorecard returns one scorecard with its per-player totals.
func (s *ScorecardService) GetScorecard(ctx context.Context, req *connect.Request[api.GetScorecardRequest]) (*connect.Response[api.GetScorecardResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	cardID := models.ScorecardID(req.Msg.ScorecardID)
	slog.Info("GetScorecard request received", "trip_id", tripID, "scorecard_id", cardID)

	card, err := s.loadCard(ctx, tripID, cardID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetScorecardResponse{Scorecard: toAPIScorecard(card)}), nil
}

// DeleteScorecard removes a scorecard. Its scores drop out of the leaderboard.
func (s *ScorecardService) DeleteScorecard(ctx context.Context, req *connect.Request[api.DeleteScorecardRequest]) (*connect.Response[api.DeleteScorecardResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	cardID := models.ScorecardID(req.Msg.ScorecardID)
	slog.Info("DeleteScorecard request received", "trip_id", tripID, "scorecard_id", cardID)

	if _, err := s.loadCard(ctx, tripID, cardID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteScorecard(ctx, cardID); err != nil {
		slog.Error("DeleteScorecard failed", "scorecard_id", cardID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Scorecard deleted", "scorecard_id", cardID)
	return connect.NewResponse(&api.DeleteScorecardResponse{}), nil
}

// UpdateScores replaces one player's hole-by-hole scores.
func (s *ScorecardService) UpdateScores(ctx context.Context, req *connect.Request[api.UpdateScoresRequest]) (*connect.Response[api.UpdateScoresResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	cardID := models.ScorecardID(req.Msg.ScorecardID)
	memberID := models.MemberID(req.Msg.MemberID)
	slog.Info("UpdateScores request received", "scorecard_id", cardID, "member_id", memberID)

	card, err := s.loadCard(ctx, tripID, cardID)
	if err != nil {
		return nil, err
	}
	if err := validateScores(req.Msg.Scores); err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range card.Players {
		if p.MemberID == memberID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, invalidArgument("member %q is not on this scorecard", req.Msg.MemberID)
	}
	card.Players[idx].Scores = append([]int(nil), req.Msg.Scores...)

	if err := s.store.UpdateScorecard(ctx, card); err != nil {
		slog.Error("UpdateScores failed", "scorecard_id", cardID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Scores updated", "scorecard_id", cardID, "member_id", memberID)
	return connect.NewResponse(&api.UpdateScoresResponse{Scorecard: toAPIScorecard(card)}), nil
}

// ListScorecards returns a trip's scorecards.
func (s *ScorecardService) ListScorecards(ctx context.Context, req *connect.Request[api.ListScorecardsRequest]) (*connect.Response[api.ListScorecardsResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("ListScorecards request received", "trip_id", tripID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	cards, err := s.store.ListScorecardsByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListScorecards failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Scorecard, len(cards))
	for i, c := range cards {
		out[i] = toAPIScorecard(c)
	}
	return connect.NewResponse(&api.ListScorecardsResponse{Scorecards: out}), nil
}

// GetLeaderboard aggregates every scorecard of the trip by player.
// Players with equal scores share a rank.
func (s *ScorecardService) GetLeaderboard(ctx context.Context, req *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("GetLeaderboard request received", "trip_id", tripID, "sort_by", req.Msg.SortBy)

	var by calculator.SortBy
	switch strings.ToLower(req.Msg.SortBy) {
	case "", "gross":
		by = calculator.SortGross
	case "net":
		by = calculator.SortNet
	default:
		return nil, invalidArgument("sort_by must be gross or net, got %q", req.Msg.SortBy)
	}

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	cards, err := s.store.ListScorecardsByTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetLeaderboard failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	values := make([]models.Scorecard, len(cards))
	for i, c := range cards {
		values[i] = *c
	}
	board := calculator.BuildLeaderboard(values, by)

	entries := make([]*api.LeaderboardEntry, len(board))
	for i, e := range board {
		rank := i + 1
		if i > 0 && rankKey(board[i-1], by) == rankKey(e, by) {
			rank = entries[i-1].Rank
		}
		entries[i] = &api.LeaderboardEntry{
			Rank:       rank,
			Name:       e.Name,
			Rounds:     e.Rounds,
			TotalGross: e.TotalGross,
			TotalNet:   e.TotalNet,
			TotalPar:   e.TotalPar,
			GrossVsPar: calculator.FormatVsPar(e.TotalGross, e.TotalPar),
			NetVsPar:   calculator.FormatVsPar(e.TotalNet, e.TotalPar),
			BestGross:  e.BestGross,
			BestNet:    e.BestNet,
		}
	}

	slog.Info("GetLeaderboard successful", "trip_id", tripID, "entries", len(entries))
	return connect.NewResponse(&api.GetLeaderboardResponse{Entries: entries}), nil
}

func rankKey(e models.LeaderboardEntry, by calculator.SortBy) int {
	if by == calculator.SortNet {
		return e.TotalNet - e.TotalPar
	}
	return e.TotalGross - e.TotalPar
}
