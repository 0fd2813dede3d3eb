package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// CreateExpense persists a new expense with its split list.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = models.ExpenseID(newID())
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount, paid_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount.String(), expense.PaidBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, memberID := range expense.SplitAmong {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, position, member_id) VALUES (?, ?, ?)",
			expense.ID, i, memberID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID models.ExpenseID) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, description, amount, paid_by, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.Amount, &expense.PaidBy, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	splits, err := s.expenseSplits(ctx, "WHERE expense_id = ?", expenseID)
	if err != nil {
		return nil, err
	}
	expense.SplitAmong = splits[expense.ID]

	return expense, nil
}

// ListExpensesByTrip retrieves all expenses for a trip, oldest first.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID models.TripID) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, description, amount, paid_by, created_at
		 FROM expenses WHERE trip_id = ? ORDER BY created_at, rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by trip: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount, &e.PaidBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splits, err := s.expenseSplits(ctx,
		"WHERE expense_id IN (SELECT id FROM expenses WHERE trip_id = ?)", tripID)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		expenses[i].SplitAmong = splits[expenses[i].ID]
	}

	return expenses, nil
}

// expenseSplits loads split lists keyed by expense, each in stored order.
func (s *SQLiteStore) expenseSplits(ctx context.Context, where string, args ...any) (map[models.ExpenseID][]models.MemberID, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, member_id FROM expense_splits "+where+" ORDER BY expense_id, position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[models.ExpenseID][]models.MemberID)
	for rows.Next() {
		var expenseID models.ExpenseID
		var memberID models.MemberID
		if err := rows.Scan(&expenseID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		splits[expenseID] = append(splits[expenseID], memberID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return splits, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID models.ExpenseID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(res, "expense", string(expenseID))
}
