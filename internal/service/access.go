// Package service implements the tripwiser.v1 Connect services on top of
// the storage layer and the calculator package.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/middleware"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

var (
	errTripIDRequired = errors.New("trip_id required")
	errNotTripMember  = errors.New("caller is not a member of this trip")
	errNotTripOwner   = errors.New("only the trip owner can do this")
)

// authorize checks that the caller owns the trip or is linked to one of its
// members. An unknown trip is NotFound, a foreign one PermissionDenied.
func authorize(ctx context.Context, store storage.TripStore, tripID models.TripID) error {
	if tripID == "" {
		return connect.NewError(connect.CodeInvalidArgument, errTripIDRequired)
	}

	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return connect.NewError(connect.CodeUnauthenticated, errors.New("no authenticated user"))
	}

	ok, err := store.IsTripMember(ctx, tripID, userID)
	if err != nil {
		return toConnectError(err)
	}
	if ok {
		return nil
	}

	if _, err := store.GetTrip(ctx, tripID); err != nil {
		return toConnectError(err)
	}
	slog.Warn("Trip access denied", "trip_id", tripID, "user_id", userID)
	return connect.NewError(connect.CodePermissionDenied, errNotTripMember)
}

// requireOwner rejects callers other than the trip owner.
func requireOwner(ctx context.Context, trip *models.Trip) error {
	if trip.OwnerID != middleware.GetUserID(ctx) {
		slog.Warn("Owner-only action denied", "trip_id", trip.ID, "user_id", middleware.GetUserID(ctx))
		return connect.NewError(connect.CodePermissionDenied, errNotTripOwner)
	}
	return nil
}

// loadTrip authorizes the caller and returns the trip with its roster.
func loadTrip(ctx context.Context, store storage.TripStore, tripID models.TripID) (*models.Trip, error) {
	if err := authorize(ctx, store, tripID); err != nil {
		return nil, err
	}
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return trip, nil
}

// toConnectError maps domain and storage errors onto Connect codes.
// Errors that already carry a code pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrInvalidGroupSize):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// notInTrip reports a record id that exists but belongs to another trip as
// missing, so ids from another trip are not revealed.
func notInTrip(kind string, id string) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound))
}

// rosterIDs resolves ids against the roster. Duplicates are dropped and the
// first-seen order kept.
func rosterIDs(trip *models.Trip, ids []string) ([]models.MemberID, error) {
	seen := make(map[models.MemberID]bool, len(ids))
	out := make([]models.MemberID, 0, len(ids))
	for _, raw := range ids {
		id := models.MemberID(raw)
		if !trip.HasMember(id) {
			return nil, invalidArgument("member %q is not on the trip roster", raw)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}
