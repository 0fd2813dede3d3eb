package models

import "github.com/shopspring/decimal"

// Expense represents a shared cost paid by one member.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID ExpenseID

	// TripID is the trip this expense belongs to.
	TripID TripID

	// Description is what the money was spent on (e.g., "Green fees").
	Description string

	// Amount is the total paid. Always positive for stored expenses.
	Amount decimal.Decimal

	// PaidBy is the member who paid the full amount.
	PaidBy MemberID

	// SplitAmong is the set of members sharing the cost equally.
	// Order is irrelevant. An empty set means the expense affects no balance.
	SplitAmong []MemberID

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// MemberBalance is one member's position across all expenses of a trip.
type MemberBalance struct {
	MemberID MemberID
	Paid     decimal.Decimal // Total amount paid for others and self
	Owed     decimal.Decimal // Total share of expenses
	Net      decimal.Decimal // Positive = owed money, Negative = owes money
}

// Settlement is a single payment that moves a debtor and a creditor toward zero.
type Settlement struct {
	From   MemberID
	To     MemberID
	Amount decimal.Decimal // Rounded to cents
}
