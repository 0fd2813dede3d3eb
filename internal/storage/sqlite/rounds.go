package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// CreateRound persists a new round with its pairing.
func (s *SQLiteStore) CreateRound(ctx context.Context, round *models.Round) error {
	if round.ID == "" {
		round.ID = models.RoundID(newID())
	}
	if round.CreatedAt == 0 {
		round.CreatedAt = s.now()
	}

	groups, err := encodeGroups(round.Groups)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rounds (id, trip_id, name, course_name, date, group_size, groups, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		round.ID, round.TripID, round.Name, round.CourseName, round.Date, round.GroupSize, groups, round.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by ID.
func (s *SQLiteStore) GetRound(ctx context.Context, roundID models.RoundID) (*models.Round, error) {
	round, err := scanRound(s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, name, course_name, date, group_size, groups, created_at
		 FROM rounds WHERE id = ?`,
		roundID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("round %s: %w", roundID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

// ListRoundsByTrip retrieves all rounds for a trip, newest first.
func (s *SQLiteStore) ListRoundsByTrip(ctx context.Context, tripID models.TripID) ([]*models.Round, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, course_name, date, group_size, groups, created_at
		 FROM rounds WHERE trip_id = ? ORDER BY created_at DESC, rowid DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds by trip: %w", err)
	}
	defer rows.Close()

	var rounds []*models.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	return rounds, nil
}

// UpdateRoundGroups writes back a new pairing for a round.
func (s *SQLiteStore) UpdateRoundGroups(ctx context.Context, roundID models.RoundID, groupSize int, groups [][]models.MemberID) error {
	encoded, err := encodeGroups(groups)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE rounds SET group_size = ?, groups = ? WHERE id = ?",
		groupSize, encoded, roundID,
	)
	if err != nil {
		return fmt.Errorf("failed to update round groups: %w", err)
	}
	return requireRow(res, "round", string(roundID))
}

// DeleteRound removes a round by ID.
func (s *SQLiteStore) DeleteRound(ctx context.Context, roundID models.RoundID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rounds WHERE id = ?", roundID)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return requireRow(res, "round", string(roundID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (*models.Round, error) {
	round := &models.Round{}
	var groups string
	if err := row.Scan(&round.ID, &round.TripID, &round.Name, &round.CourseName, &round.Date,
		&round.GroupSize, &groups, &round.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(groups), &round.Groups); err != nil {
		return nil, fmt.Errorf("failed to decode round groups: %w", err)
	}
	return round, nil
}

func encodeGroups(groups [][]models.MemberID) (string, error) {
	if groups == nil {
		groups = [][]models.MemberID{}
	}
	b, err := json.Marshal(groups)
	if err != nil {
		return "", fmt.Errorf("failed to encode round groups: %w", err)
	}
	return string(b), nil
}
