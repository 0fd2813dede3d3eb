package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// CreateItineraryItem appends an item to a trip's schedule.
func (s *SQLiteStore) CreateItineraryItem(ctx context.Context, item *models.ItineraryItem) error {
	if item.ID == "" {
		item.ID = models.ItemID(newID())
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = s.now()
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO itinerary_items (id, trip_id, date, time, type, title, description, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?,
		         (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM itinerary_items WHERE trip_id = ?), ?)
		 RETURNING sort_order`,
		item.ID, item.TripID, item.Date, item.Time, item.Type, item.Title, item.Description,
		item.TripID, item.CreatedAt,
	).Scan(&item.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert itinerary item: %w", err)
	}

	return nil
}

// GetItineraryItem retrieves an itinerary item by ID.
func (s *SQLiteStore) GetItineraryItem(ctx context.Context, itemID models.ItemID) (*models.ItineraryItem, error) {
	item, err := scanItineraryItem(s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, date, time, type, title, description, sort_order, created_at
		 FROM itinerary_items WHERE id = ?`,
		itemID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("itinerary item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary item: %w", err)
	}
	return item, nil
}

// ListItineraryByTrip retrieves a trip's schedule in chronological order.
// Items without a date sort first.
func (s *SQLiteStore) ListItineraryByTrip(ctx context.Context, tripID models.TripID) ([]*models.ItineraryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, date, time, type, title, description, sort_order, created_at
		 FROM itinerary_items WHERE trip_id = ? ORDER BY date, time, sort_order`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list itinerary: %w", err)
	}
	defer rows.Close()

	var items []*models.ItineraryItem
	for rows.Next() {
		item, err := scanItineraryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itinerary: %w", err)
	}

	return items, nil
}

// DeleteItineraryItem removes an itinerary item by ID.
func (s *SQLiteStore) DeleteItineraryItem(ctx context.Context, itemID models.ItemID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM itinerary_items WHERE id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary item: %w", err)
	}
	return requireRow(res, "itinerary item", string(itemID))
}

func scanItineraryItem(row rowScanner) (*models.ItineraryItem, error) {
	item := &models.ItineraryItem{}
	err := row.Scan(&item.ID, &item.TripID, &item.Date, &item.Time, &item.Type, &item.Title,
		&item.Description, &item.SortOrder, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}
