package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// maxStrokes caps a single hole score; anything above is a typo.
const maxStrokes = 20

// SkinsService implements the Connect SkinsService.
type SkinsService struct {
	apiconnect.UnimplementedSkinsServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewSkinsService creates a new SkinsService. m may be nil.
func NewSkinsService(store storage.Store, m *metrics.Metrics) *SkinsService {
	return &SkinsService{store: store, metrics: m}
}

// loadGame authorizes the caller and fetches a game that belongs to the trip.
func (s *SkinsService) loadGame(ctx context.Context, tripID models.TripID, gameID models.GameID) (*models.SkinsGame, error) {
	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}
	game, err := s.store.GetSkinsGame(ctx, gameID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if game.TripID != tripID {
		return nil, notInTrip("skins game", string(gameID))
	}
	return game, nil
}

func (s *SkinsService) results(game *models.SkinsGame) *api.SkinsResults {
	res := calculator.ComputeSkinsResults(*game)
	s.metrics.SkinsRecomputed()
	return toAPISkinsResults(game.Players, res)
}

// CreateSkinsGame starts a skins game between roster members.
func (s *SkinsService) CreateSkinsGame(ctx context.Context, req *connect.Request[api.CreateSkinsGameRequest]) (*connect.Response[api.CreateSkinsGameResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("CreateSkinsGame request received",
		"trip_id", tripID,
		"name", req.Msg.Name,
		"players_count", len(req.Msg.Players),
	)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}

	players, err := rosterIDs(trip, req.Msg.Players)
	if err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return nil, invalidArgument("a skins game needs at least 2 players, got %d", len(players))
	}

	stake := models.DefaultStake
	if req.Msg.Stake.Valid {
		stake = req.Msg.Stake.Decimal
		if !stake.IsPositive() {
			return nil, invalidArgument("stake must be positive, got %s", stake)
		}
		if !stake.Equal(stake.Round(2)) {
			return nil, invalidArgument("stake has more than two decimal places: %s", stake)
		}
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		name = "Skins"
	}

	game := &models.SkinsGame{
		TripID:  tripID,
		Name:    name,
		Players: players,
		Stake:   stake,
		Holes:   models.NewHoles(),
	}
	if err := s.store.CreateSkinsGame(ctx, game); err != nil {
		slog.Error("CreateSkinsGame failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Skins game created", "trip_id", tripID, "game_id", game.ID, "stake", stake)
	return connect.NewResponse(&api.CreateSkinsGameResponse{Game: toAPISkinsGame(game)}), nil
}

// RecordScore enters (or clears, with 0 strokes) one player's score on one
// hole and returns the recomputed results.
func (s *SkinsService) RecordScore(ctx context.Context, req *connect.Request[api.RecordScoreRequest]) (*connect.Response[api.RecordScoreResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	gameID := models.GameID(req.Msg.GameID)
	memberID := models.MemberID(req.Msg.MemberID)
	slog.Info("RecordScore request received",
		"game_id", gameID,
		"hole", req.Msg.Hole,
		"member_id", memberID,
		"strokes", req.Msg.Strokes,
	)

	if req.Msg.Hole < 1 || req.Msg.Hole > models.HoleCount {
		return nil, invalidArgument("hole must be between 1 and %d, got %d", models.HoleCount, req.Msg.Hole)
	}
	if req.Msg.Strokes < 0 || req.Msg.Strokes > maxStrokes {
		return nil, invalidArgument("strokes must be between 0 and %d, got %d", maxStrokes, req.Msg.Strokes)
	}

	game, err := s.loadGame(ctx, tripID, gameID)
	if err != nil {
		return nil, err
	}
	playing := false
	for _, p := range game.Players {
		if p == memberID {
			playing = true
			break
		}
	}
	if !playing {
		return nil, invalidArgument("member %q is not playing in this game", req.Msg.MemberID)
	}

	if err := s.store.SetHoleScore(ctx, gameID, req.Msg.Hole, memberID, req.Msg.Strokes); err != nil {
		slog.Error("RecordScore failed", "game_id", gameID, "error", err)
		return nil, toConnectError(err)
	}

	scores := game.Holes[req.Msg.Hole-1].Scores
	if req.Msg.Strokes == 0 {
		delete(scores, memberID)
	} else {
		scores[memberID] = req.Msg.Strokes
	}

	return connect.NewResponse(&api.RecordScoreResponse{
		Game:    toAPISkinsGame(game),
		Results: s.results(game),
	}), nil
}

// GetSkinsResults adjudicates a game from its stored scores.
func (s *SkinsService) GetSkinsResults(ctx context.Context, req *connect.Request[api.GetSkinsResultsRequest]) (*connect.Response[api.GetSkinsResultsResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	gameID := models.GameID(req.Msg.GameID)
	slog.Info("GetSkinsResults request received", "trip_id", tripID, "game_id", gameID)

	game, err := s.loadGame(ctx, tripID, gameID)
	if err != nil {
		return nil, err
	}

	results := s.results(game)
	slog.Info("GetSkinsResults successful",
		"game_id", gameID,
		"carryover_remaining", results.CarryoverRemaining,
	)
	return connect.NewResponse(&api.GetSkinsResultsResponse{
		Game:    toAPISkinsGame(game),
		Results: results,
	}), nil
}

// ListSkinsGames returns a trip's skins games with their raw scores.
func (s *SkinsService) ListSkinsGames(ctx context.Context, req *connect.Request[api.ListSkinsGamesRequest]) (*connect.Response[api.ListSkinsGamesResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("ListSkinsGames request received", "trip_id", tripID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	games, err := s.store.ListSkinsGamesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListSkinsGames failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.SkinsGame, len(games))
	for i, g := range games {
		out[i] = toAPISkinsGame(g)
	}
	return connect.NewResponse(&api.ListSkinsGamesResponse{Games: out}), nil
}

// DeleteSkinsGame removes a game and its scores.
func (s *SkinsService) DeleteSkinsGame(ctx context.Context, req *connect.Request[api.DeleteSkinsGameRequest]) (*connect.Response[api.DeleteSkinsGameResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	gameID := models.GameID(req.Msg.GameID)
	slog.Info("DeleteSkinsGame request received", "trip_id", tripID, "game_id", gameID)

	if _, err := s.loadGame(ctx, tripID, gameID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteSkinsGame(ctx, gameID); err != nil {
		slog.Error("DeleteSkinsGame failed", "game_id", gameID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Skins game deleted", "game_id", gameID)
	return connect.NewResponse(&api.DeleteSkinsGameResponse{}), nil
}
