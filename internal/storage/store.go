// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripwiser/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	TripStore
	ExpenseStore
	RoundStore
	SkinsStore
	ScorecardStore
	ItineraryStore

	// Close releases any resources held by the store.
	Close() error
}

// TripStore persists trips and their rosters.
type TripStore interface {
	// CreateTrip persists a new trip. trip.ID and trip.CreatedAt are populated
	// by the store. Members on the trip are inserted in order.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip with its roster in roster order.
	GetTrip(ctx context.Context, tripID models.TripID) (*models.Trip, error)

	// ListTripsForUser returns trips the user owns or is a member of, newest first.
	ListTripsForUser(ctx context.Context, userID models.UserID) ([]*models.Trip, error)

	// UpdateTrip changes a trip's name, destination and dates.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and everything that belongs to it.
	DeleteTrip(ctx context.Context, tripID models.TripID) error

	// IsTripMember reports whether the user owns the trip or is linked to a member.
	IsTripMember(ctx context.Context, tripID models.TripID, userID models.UserID) (bool, error)

	// AddMember appends a member to the roster. member.ID is populated by the store.
	AddMember(ctx context.Context, member *models.Member) error

	// UpdateMember changes a member's name, handicap and user link.
	UpdateMember(ctx context.Context, member *models.Member) error

	// RemoveMember deletes a member from the roster. Expenses keep their references.
	RemoveMember(ctx context.Context, memberID models.MemberID) error

	// ListMembers returns the roster of a trip in roster order.
	ListMembers(ctx context.Context, tripID models.TripID) ([]models.Member, error)
}

// ExpenseStore persists shared expenses.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, expenseID models.ExpenseID) (*models.Expense, error)
	// ListExpensesByTrip returns expenses oldest first.
	ListExpensesByTrip(ctx context.Context, tripID models.TripID) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID models.ExpenseID) error
}

// RoundStore persists rounds and their pairings.
type RoundStore interface {
	CreateRound(ctx context.Context, round *models.Round) error
	GetRound(ctx context.Context, roundID models.RoundID) (*models.Round, error)
	ListRoundsByTrip(ctx context.Context, tripID models.TripID) ([]*models.Round, error)

	// UpdateRoundGroups replaces the pairing of a round, e.g. after a reshuffle.
	UpdateRoundGroups(ctx context.Context, roundID models.RoundID, groupSize int, groups [][]models.MemberID) error

	DeleteRound(ctx context.Context, roundID models.RoundID) error
}

// SkinsStore persists skins games and their per-hole scores.
type SkinsStore interface {
	// CreateSkinsGame persists a game. Holes are always stored as 1..18.
	CreateSkinsGame(ctx context.Context, game *models.SkinsGame) error

	// GetSkinsGame retrieves a game with all 18 holes populated.
	GetSkinsGame(ctx context.Context, gameID models.GameID) (*models.SkinsGame, error)

	ListSkinsGamesByTrip(ctx context.Context, tripID models.TripID) ([]*models.SkinsGame, error)

	// SetHoleScore records strokes for one player on one hole.
	// Strokes <= 0 clears the entry.
	SetHoleScore(ctx context.Context, gameID models.GameID, hole int, memberID models.MemberID, strokes int) error

	DeleteSkinsGame(ctx context.Context, gameID models.GameID) error
}

// ScorecardStore persists scorecards.
type ScorecardStore interface {
	CreateScorecard(ctx context.Context, card *models.Scorecard) error
	GetScorecard(ctx context.Context, cardID models.ScorecardID) (*models.Scorecard, error)
	ListScorecardsByTrip(ctx context.Context, tripID models.TripID) ([]*models.Scorecard, error)

	// UpdateScorecard replaces the pars and player rows of a scorecard.
	UpdateScorecard(ctx context.Context, card *models.Scorecard) error

	DeleteScorecard(ctx context.Context, cardID models.ScorecardID) error
}

// ItineraryStore persists a trip's schedule.
type ItineraryStore interface {
	// CreateItineraryItem appends an item after the trip's last one.
	// item.ID, item.SortOrder and item.CreatedAt are populated by the store.
	CreateItineraryItem(ctx context.Context, item *models.ItineraryItem) error

	GetItineraryItem(ctx context.Context, itemID models.ItemID) (*models.ItineraryItem, error)

	// ListItineraryByTrip returns items ordered by date, time, then insertion.
	ListItineraryByTrip(ctx context.Context, tripID models.TripID) ([]*models.ItineraryItem, error)

	DeleteItineraryItem(ctx context.Context, itemID models.ItemID) error
}
