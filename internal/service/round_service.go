package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/randutil"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// RoundService implements the Connect RoundService.
type RoundService struct {
	apiconnect.UnimplementedRoundServiceHandler
	store   storage.Store
	rand    *randutil.Source
	metrics *metrics.Metrics
}

// NewRoundService creates a new RoundService. Pairings draw from src; m may be nil.
func NewRoundService(store storage.Store, src *randutil.Source, m *metrics.Metrics) *RoundService {
	return &RoundService{store: store, rand: src, metrics: m}
}

// pair partitions the roster with a generator of its own.
func (s *RoundService) pair(ids []models.MemberID, groupSize int) ([][]models.MemberID, error) {
	rng, err := s.rand.Rand()
	if err != nil {
		return nil, err
	}
	groups, err := calculator.MakeGroups(ids, groupSize, rng)
	if err != nil {
		return nil, err
	}
	s.metrics.PairingGenerated()
	return groups, nil
}

// CreateRound creates a round and randomly pairs the current roster.
func (s *RoundService) CreateRound(ctx context.Context, req *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("CreateRound request received",
		"trip_id", tripID,
		"name", req.Msg.Name,
		"group_size", req.Msg.GroupSize,
	)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, invalidArgument("round name required")
	}

	groups, err := s.pair(trip.MemberIDs(), req.Msg.GroupSize)
	if err != nil {
		slog.Warn("CreateRound pairing failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	round := &models.Round{
		TripID:     tripID,
		Name:       strings.TrimSpace(req.Msg.Name),
		CourseName: req.Msg.CourseName,
		Date:       req.Msg.Date,
		GroupSize:  req.Msg.GroupSize,
		Groups:     groups,
	}
	if err := s.store.CreateRound(ctx, round); err != nil {
		slog.Error("CreateRound failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Round created", "trip_id", tripID, "round_id", round.ID, "groups", len(groups))
	return connect.NewResponse(&api.CreateRoundResponse{Round: toAPIRound(round)}), nil
}

// ReshuffleRound draws a fresh pairing from the current roster and writes it
// back, optionally with a new group size.
func (s *RoundService) ReshuffleRound(ctx context.Context, req *connect.Request[api.ReshuffleRoundRequest]) (*connect.Response[api.ReshuffleRoundResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	roundID := models.RoundID(req.Msg.RoundID)
	slog.Info("ReshuffleRound request received", "trip_id", tripID, "round_id", roundID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}

	round, err := s.store.GetRound(ctx, roundID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if round.TripID != tripID {
		return nil, notInTrip("round", string(roundID))
	}

	groupSize := round.GroupSize
	if req.Msg.GroupSize != 0 {
		groupSize = req.Msg.GroupSize
	}

	groups, err := s.pair(trip.MemberIDs(), groupSize)
	if err != nil {
		slog.Warn("ReshuffleRound pairing failed", "round_id", roundID, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.UpdateRoundGroups(ctx, roundID, groupSize, groups); err != nil {
		slog.Error("ReshuffleRound failed", "round_id", roundID, "error", err)
		return nil, toConnectError(err)
	}
	round.GroupSize = groupSize
	round.Groups = groups

	slog.Info("Round reshuffled", "round_id", roundID, "groups", len(groups))
	return connect.NewResponse(&api.ReshuffleRoundResponse{Round: toAPIRound(round)}), nil
}

// ListRounds returns a trip's rounds.
func (s *RoundService) ListRounds(ctx context.Context, req *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("ListRounds request received", "trip_id", tripID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	rounds, err := s.store.ListRoundsByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListRounds failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Round, len(rounds))
	for i, r := range rounds {
		out[i] = toAPIRound(r)
	}
	return connect.NewResponse(&api.ListRoundsResponse{Rounds: out}), nil
}

// DeleteRound removes a round.
func (s *RoundService) DeleteRound(ctx context.Context, req *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	roundID := models.RoundID(req.Msg.RoundID)
	slog.Info("DeleteRound request received", "trip_id", tripID, "round_id", roundID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	round, err := s.store.GetRound(ctx, roundID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if round.TripID != tripID {
		return nil, notInTrip("round", string(roundID))
	}

	if err := s.store.DeleteRound(ctx, roundID); err != nil {
		slog.Error("DeleteRound failed", "round_id", roundID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Round deleted", "round_id", roundID)
	return connect.NewResponse(&api.DeleteRoundResponse{}), nil
}
