package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/middleware"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// Handicaps are signed: a plus handicap is stored as a negative number.
const (
	minHandicap = -10
	maxHandicap = 54
)

// TripService implements the Connect TripService.
type TripService struct {
	apiconnect.UnimplementedTripServiceHandler
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

func validateMember(name string, handicap int) error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument("member name required")
	}
	if handicap < minHandicap || handicap > maxHandicap {
		return invalidArgument("handicap must be between %d and %d, got %d", minHandicap, maxHandicap, handicap)
	}
	return nil
}

// validateDates checks that set dates are YYYY-MM-DD and in order.
func validateDates(start, end string) error {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(time.DateOnly, start); err != nil {
			return invalidArgument("start date %q is not YYYY-MM-DD", start)
		}
	}
	if end != "" {
		if to, err = time.Parse(time.DateOnly, end); err != nil {
			return invalidArgument("end date %q is not YYYY-MM-DD", end)
		}
	}
	if start != "" && end != "" && to.Before(from) {
		return invalidArgument("end date %s is before start date %s", end, start)
	}
	return nil
}

// CreateTrip creates a trip owned by the caller.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("CreateTrip request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
		"user_id", userID,
	)

	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, invalidArgument("trip name required")
	}
	if err := validateDates(req.Msg.StartDate, req.Msg.EndDate); err != nil {
		return nil, err
	}

	inputs := req.Msg.Members
	if self := req.Msg.JoinAsMember; self != nil {
		joined := *self
		joined.UserID = string(userID)
		inputs = append([]*api.MemberInput{&joined}, inputs...)
	}

	trip := &models.Trip{
		OwnerID:     userID,
		Name:        strings.TrimSpace(req.Msg.Name),
		Destination: req.Msg.Destination,
		StartDate:   req.Msg.StartDate,
		EndDate:     req.Msg.EndDate,
		Members:     make([]models.Member, 0, len(inputs)),
	}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if err := validateMember(in.Name, in.Handicap); err != nil {
			return nil, err
		}
		trip.Members = append(trip.Members, models.Member{
			UserID:   models.UserID(in.UserID),
			Name:     strings.TrimSpace(in.Name),
			Handicap: in.Handicap,
		})
	}

	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)
	return connect.NewResponse(&api.CreateTripResponse{Trip: toAPITrip(trip)}), nil
}

// GetTrip retrieves a trip and its roster.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("GetTrip request received", "trip_id", tripID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetTripResponse{Trip: toAPITrip(trip)}), nil
}

// ListTrips returns the trips visible to the caller.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("ListTrips request received", "user_id", userID)

	trips, err := s.store.ListTripsForUser(ctx, userID)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Trip, len(trips))
	for i, t := range trips {
		out[i] = toAPITrip(t)
	}

	slog.Info("ListTrips successful", "count", len(out))
	return connect.NewResponse(&api.ListTripsResponse{Trips: out}), nil
}

// UpdateTrip changes a trip's name, destination and dates.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("UpdateTrip request received", "trip_id", tripID, "name", req.Msg.Name)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("trip name required")
	}
	if err := validateDates(req.Msg.StartDate, req.Msg.EndDate); err != nil {
		return nil, err
	}

	trip.Name = name
	trip.Destination = req.Msg.Destination
	trip.StartDate = req.Msg.StartDate
	trip.EndDate = req.Msg.EndDate
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		slog.Error("UpdateTrip failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip updated", "trip_id", tripID)
	return connect.NewResponse(&api.UpdateTripResponse{Trip: toAPITrip(trip)}), nil
}

// DeleteTrip removes a trip. Only its owner may do so.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("DeleteTrip request received", "trip_id", tripID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, trip); err != nil {
		return nil, err
	}

	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip deleted", "trip_id", tripID)
	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddMember appends a member to the roster.
func (s *TripService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("AddMember request received", "trip_id", tripID, "name", req.Msg.Name)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	if err := validateMember(req.Msg.Name, req.Msg.Handicap); err != nil {
		return nil, err
	}
	if req.Msg.UserID != "" {
		if err := requireOwner(ctx, trip); err != nil {
			return nil, err
		}
	}

	member := &models.Member{
		TripID:   tripID,
		UserID:   models.UserID(req.Msg.UserID),
		Name:     strings.TrimSpace(req.Msg.Name),
		Handicap: req.Msg.Handicap,
	}
	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member added", "trip_id", tripID, "member_id", member.ID)
	return connect.NewResponse(&api.AddMemberResponse{Member: toAPIMember(member)}), nil
}

// UpdateMember changes a member's name and handicap. Only the trip owner may
// change which account a member is linked to.
func (s *TripService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	memberID := models.MemberID(req.Msg.MemberID)
	slog.Info("UpdateMember request received", "trip_id", tripID, "member_id", memberID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	current, ok := trip.Member(memberID)
	if !ok {
		return nil, notInTrip("member", string(memberID))
	}
	if err := validateMember(req.Msg.Name, req.Msg.Handicap); err != nil {
		return nil, err
	}

	userID := current.UserID
	if req.Msg.UserID != nil && models.UserID(*req.Msg.UserID) != userID {
		if err := requireOwner(ctx, trip); err != nil {
			return nil, err
		}
		userID = models.UserID(*req.Msg.UserID)
	}

	member := &models.Member{
		ID:       memberID,
		TripID:   tripID,
		UserID:   userID,
		Name:     strings.TrimSpace(req.Msg.Name),
		Handicap: req.Msg.Handicap,
	}
	if err := s.store.UpdateMember(ctx, member); err != nil {
		slog.Error("UpdateMember failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member updated", "trip_id", tripID, "member_id", memberID)
	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(member)}), nil
}

// RemoveMember drops a member from the roster. Expenses that reference the
// member keep counting toward balances.
func (s *TripService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	memberID := models.MemberID(req.Msg.MemberID)
	slog.Info("RemoveMember request received", "trip_id", tripID, "member_id", memberID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.HasMember(memberID) {
		return nil, notInTrip("member", string(memberID))
	}

	if err := s.store.RemoveMember(ctx, memberID); err != nil {
		slog.Error("RemoveMember failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member removed", "trip_id", tripID, "member_id", memberID)
	return connect.NewResponse(&api.RemoveMemberResponse{}), nil
}
