package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// Share computes the equal per-member share of an expense.
// Based on the rule: share = amount / len(split_among)
//
// It reports false for expenses that affect no balance: an empty split or a
// non-positive amount.
func Share(expense models.Expense) (decimal.Decimal, bool) {
	if len(expense.SplitAmong) == 0 || !expense.Amount.IsPositive() {
		return decimal.Zero, false
	}
	return expense.Amount.Div(decimal.NewFromInt(int64(len(expense.SplitAmong)))), true
}

// SplitExpense returns what each member of the split owes for one expense.
// A member listed twice is charged twice.
func SplitExpense(expense models.Expense) map[models.MemberID]decimal.Decimal {
	share, ok := Share(expense)
	if !ok {
		return nil
	}
	splits := make(map[models.MemberID]decimal.Decimal, len(expense.SplitAmong))
	for _, id := range expense.SplitAmong {
		splits[id] = splits[id].Add(share)
	}
	return splits
}
