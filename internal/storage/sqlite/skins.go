package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// CreateSkinsGame persists a new skins game, its players and any scores already entered.
func (s *SQLiteStore) CreateSkinsGame(ctx context.Context, game *models.SkinsGame) error {
	if game.ID == "" {
		game.ID = models.GameID(newID())
	}
	if game.CreatedAt == 0 {
		game.CreatedAt = s.now()
	}
	if len(game.Holes) != models.HoleCount {
		game.Holes = models.NewHoles()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO skins_games (id, trip_id, name, stake, created_at) VALUES (?, ?, ?, ?, ?)",
		game.ID, game.TripID, game.Name, game.Stake.String(), game.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert skins game: %w", err)
	}

	for i, memberID := range game.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO skins_players (game_id, position, member_id) VALUES (?, ?, ?)",
			game.ID, i, memberID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skins player: %w", err)
		}
	}

	for _, hole := range game.Holes {
		for memberID, strokes := range hole.Scores {
			if err := upsertScore(ctx, tx, game.ID, hole.Number, memberID, strokes); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSkinsGame retrieves a skins game with its players and all 18 holes.
func (s *SQLiteStore) GetSkinsGame(ctx context.Context, gameID models.GameID) (*models.SkinsGame, error) {
	game := &models.SkinsGame{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, trip_id, name, stake, created_at FROM skins_games WHERE id = ?",
		gameID,
	).Scan(&game.ID, &game.TripID, &game.Name, &game.Stake, &game.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("skins game %s: %w", gameID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skins game: %w", err)
	}

	if err := s.loadSkinsDetails(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// ListSkinsGamesByTrip retrieves all skins games for a trip, newest first.
func (s *SQLiteStore) ListSkinsGamesByTrip(ctx context.Context, tripID models.TripID) ([]*models.SkinsGame, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, stake, created_at
		 FROM skins_games WHERE trip_id = ? ORDER BY created_at DESC, rowid DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skins games by trip: %w", err)
	}

	var games []*models.SkinsGame
	for rows.Next() {
		game := &models.SkinsGame{}
		if err := rows.Scan(&game.ID, &game.TripID, &game.Name, &game.Stake, &game.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan skins game: %w", err)
		}
		games = append(games, game)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skins games: %w", err)
	}

	for _, game := range games {
		if err := s.loadSkinsDetails(ctx, game); err != nil {
			return nil, err
		}
	}
	return games, nil
}

// loadSkinsDetails fills in players and holes for a game row.
func (s *SQLiteStore) loadSkinsDetails(ctx context.Context, game *models.SkinsGame) error {
	playerRows, err := s.db.QueryContext(ctx,
		"SELECT member_id FROM skins_players WHERE game_id = ? ORDER BY position",
		game.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get skins players: %w", err)
	}
	for playerRows.Next() {
		var memberID models.MemberID
		if err := playerRows.Scan(&memberID); err != nil {
			playerRows.Close()
			return fmt.Errorf("failed to scan skins player: %w", err)
		}
		game.Players = append(game.Players, memberID)
	}
	playerRows.Close()
	if err := playerRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate skins players: %w", err)
	}

	game.Holes = models.NewHoles()
	scoreRows, err := s.db.QueryContext(ctx,
		"SELECT hole_number, member_id, strokes FROM skins_scores WHERE game_id = ?",
		game.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get skins scores: %w", err)
	}
	defer scoreRows.Close()

	for scoreRows.Next() {
		var hole, strokes int
		var memberID models.MemberID
		if err := scoreRows.Scan(&hole, &memberID, &strokes); err != nil {
			return fmt.Errorf("failed to scan skins score: %w", err)
		}
		game.Holes[hole-1].Scores[memberID] = strokes
	}
	if err := scoreRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate skins scores: %w", err)
	}

	return nil
}

// SetHoleScore records or clears one player's strokes on one hole.
func (s *SQLiteStore) SetHoleScore(ctx context.Context, gameID models.GameID, hole int, memberID models.MemberID, strokes int) error {
	if hole < 1 || hole > models.HoleCount {
		return fmt.Errorf("hole %d out of range 1-%d", hole, models.HoleCount)
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM skins_games WHERE id = ?", gameID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("skins game %s: %w", gameID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check skins game existence: %w", err)
	}

	return upsertScore(ctx, s.db, gameID, hole, memberID, strokes)
}

func upsertScore(ctx context.Context, q queryer, gameID models.GameID, hole int, memberID models.MemberID, strokes int) error {
	if strokes <= 0 {
		_, err := q.ExecContext(ctx,
			"DELETE FROM skins_scores WHERE game_id = ? AND hole_number = ? AND member_id = ?",
			gameID, hole, memberID,
		)
		if err != nil {
			return fmt.Errorf("failed to clear skins score: %w", err)
		}
		return nil
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO skins_scores (game_id, hole_number, member_id, strokes) VALUES (?, ?, ?, ?)
		 ON CONFLICT (game_id, hole_number, member_id) DO UPDATE SET strokes = excluded.strokes`,
		gameID, hole, memberID, strokes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skins score: %w", err)
	}
	return nil
}

// DeleteSkinsGame removes a skins game by ID.
func (s *SQLiteStore) DeleteSkinsGame(ctx context.Context, gameID models.GameID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM skins_games WHERE id = ?", gameID)
	if err != nil {
		return fmt.Errorf("failed to delete skins game: %w", err)
	}
	return requireRow(res, "skins game", string(gameID))
}
