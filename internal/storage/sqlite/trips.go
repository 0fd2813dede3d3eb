package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// CreateTrip persists a new trip and its initial roster.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	// Generate ID if not set
	if trip.ID == "" {
		trip.ID = models.TripID(newID())
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO trips (id, owner_id, name, destination, start_date, end_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.OwnerID, trip.Name, trip.Destination, trip.StartDate, trip.EndDate, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	for i := range trip.Members {
		member := &trip.Members[i]
		member.TripID = trip.ID
		if err := insertMember(ctx, tx, member); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID, including its roster.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID models.TripID) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, destination, start_date, end_date, created_at
		 FROM trips WHERE id = ?`,
		tripID,
	).Scan(&trip.ID, &trip.OwnerID, &trip.Name, &trip.Destination, &trip.StartDate, &trip.EndDate, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	trip.Members, err = s.ListMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// ListTripsForUser retrieves trips the user owns or belongs to.
func (s *SQLiteStore) ListTripsForUser(ctx context.Context, userID models.UserID) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM trips
		 WHERE owner_id = ?
		    OR id IN (SELECT trip_id FROM members WHERE user_id = ?)
		 ORDER BY created_at DESC, id`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	var ids []models.TripID
	for rows.Next() {
		var id models.TripID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	trips := make([]*models.Trip, 0, len(ids))
	for _, id := range ids {
		trip, err := s.GetTrip(ctx, id)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// UpdateTrip updates a trip's details. The owner and roster are left alone.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE trips SET name = ?, destination = ?, start_date = ?, end_date = ? WHERE id = ?",
		trip.Name, trip.Destination, trip.StartDate, trip.EndDate, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return requireRow(res, "trip", string(trip.ID))
}

// DeleteTrip removes a trip; dependent records cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID models.TripID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return requireRow(res, "trip", string(tripID))
}

// IsTripMember reports whether the user owns the trip or is linked to one of its members.
func (s *SQLiteStore) IsTripMember(ctx context.Context, tripID models.TripID, userID models.UserID) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var ok bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM trips WHERE id = ? AND owner_id = ?)
		     OR EXISTS (SELECT 1 FROM members WHERE trip_id = ? AND user_id = ?)`,
		tripID, userID, tripID, userID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check trip membership: %w", err)
	}
	return ok, nil
}

// AddMember appends a member to the end of a trip roster.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", member.TripID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("trip %s: %w", member.TripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}

	return insertMember(ctx, s.db, member)
}

func insertMember(ctx context.Context, q queryer, member *models.Member) error {
	if member.ID == "" {
		member.ID = models.MemberID(newID())
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO members (id, trip_id, user_id, name, handicap, position)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM members WHERE trip_id = ?))`,
		member.ID, member.TripID, nullString(string(member.UserID)), member.Name, member.Handicap, member.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// UpdateMember updates a member's name, handicap and account link.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.Member) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET name = ?, handicap = ?, user_id = ? WHERE id = ?",
		member.Name, member.Handicap, nullString(string(member.UserID)), member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return requireRow(res, "member", string(member.ID))
}

// RemoveMember deletes a member from its trip roster.
func (s *SQLiteStore) RemoveMember(ctx context.Context, memberID models.MemberID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return requireRow(res, "member", string(memberID))
}

// ListMembers retrieves the roster of a trip in the order members were added.
func (s *SQLiteStore) ListMembers(ctx context.Context, tripID models.TripID) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, user_id, name, handicap
		 FROM members WHERE trip_id = ? ORDER BY position`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		var userID sql.NullString
		if err := rows.Scan(&m.ID, &m.TripID, &userID, &m.Name, &m.Handicap); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		if userID.Valid {
			m.UserID = models.UserID(userID.String)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
