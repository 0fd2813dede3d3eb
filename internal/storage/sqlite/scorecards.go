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

// scorecardPlayerRow is the stored JSON shape of a scorecard row.
type scorecardPlayerRow struct {
	MemberID string `json:"member_id,omitempty"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
	Scores   []int  `json:"scores"`
}

// CreateScorecard persists a new scorecard.
func (s *SQLiteStore) CreateScorecard(ctx context.Context, card *models.Scorecard) error {
	if card.ID == "" {
		card.ID = models.ScorecardID(newID())
	}
	if card.CreatedAt == 0 {
		card.CreatedAt = s.now()
	}

	pars, players, err := encodeScorecard(card)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scorecards (id, trip_id, course_name, date, pars, players, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		card.ID, card.TripID, card.CourseName, card.Date, pars, players, card.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scorecard: %w", err)
	}

	return nil
}

// GetScorecard retrieves a scorecard by ID.
func (s *SQLiteStore) GetScorecard(ctx context.Context, cardID models.ScorecardID) (*models.Scorecard, error) {
	card, err := scanScorecard(s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, course_name, date, pars, players, created_at
		 FROM scorecards WHERE id = ?`,
		cardID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scorecard %s: %w", cardID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scorecard: %w", err)
	}
	return card, nil
}

// ListScorecardsByTrip retrieves all scorecards for a trip, newest first.
func (s *SQLiteStore) ListScorecardsByTrip(ctx context.Context, tripID models.TripID) ([]*models.Scorecard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, course_name, date, pars, players, created_at
		 FROM scorecards WHERE trip_id = ? ORDER BY created_at DESC, rowid DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scorecards by trip: %w", err)
	}
	defer rows.Close()

	var cards []*models.Scorecard
	for rows.Next() {
		card, err := scanScorecard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scorecard: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scorecards: %w", err)
	}

	return cards, nil
}

// UpdateScorecard replaces the pars and player rows of a scorecard.
func (s *SQLiteStore) UpdateScorecard(ctx context.Context, card *models.Scorecard) error {
	pars, players, err := encodeScorecard(card)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE scorecards SET course_name = ?, date = ?, pars = ?, players = ? WHERE id = ?",
		card.CourseName, card.Date, pars, players, card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scorecard: %w", err)
	}
	return requireRow(res, "scorecard", string(card.ID))
}

// DeleteScorecard removes a scorecard by ID.
func (s *SQLiteStore) DeleteScorecard(ctx context.Context, cardID models.ScorecardID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scorecards WHERE id = ?", cardID)
	if err != nil {
		return fmt.Errorf("failed to delete scorecard: %w", err)
	}
	return requireRow(res, "scorecard", string(cardID))
}

func scanScorecard(row rowScanner) (*models.Scorecard, error) {
	card := &models.Scorecard{}
	var pars, players string
	if err := row.Scan(&card.ID, &card.TripID, &card.CourseName, &card.Date, &pars, &players, &card.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(pars), &card.Pars); err != nil {
		return nil, fmt.Errorf("failed to decode scorecard pars: %w", err)
	}

	var rows []scorecardPlayerRow
	if err := json.Unmarshal([]byte(players), &rows); err != nil {
		return nil, fmt.Errorf("failed to decode scorecard players: %w", err)
	}
	card.Players = make([]models.ScorecardPlayer, len(rows))
	for i, r := range rows {
		card.Players[i] = models.ScorecardPlayer{
			MemberID: models.MemberID(r.MemberID),
			Name:     r.Name,
			Handicap: r.Handicap,
			Scores:   r.Scores,
		}
	}

	return card, nil
}

func encodeScorecard(card *models.Scorecard) (string, string, error) {
	pars := card.Pars
	if pars == nil {
		pars = []int{}
	}
	parsJSON, err := json.Marshal(pars)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode scorecard pars: %w", err)
	}

	rows := make([]scorecardPlayerRow, len(card.Players))
	for i, p := range card.Players {
		rows[i] = scorecardPlayerRow{
			MemberID: string(p.MemberID),
			Name:     p.Name,
			Handicap: p.Handicap,
			Scores:   p.Scores,
		}
	}
	playersJSON, err := json.Marshal(rows)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode scorecard players: %w", err)
	}

	return string(parsJSON), string(playersJSON), nil
}
