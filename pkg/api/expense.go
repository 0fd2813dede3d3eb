package api

import "github.com/shopspring/decimal"

// Expense is a cost paid by one member and shared equally.
type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      string          `json:"paidBy"`
	SplitAmong  []string        `json:"splitAmong"`
	CreatedAt   int64           `json:"createdAt"`
}

// MemberBalance is a member's position across all expenses of a trip.
type MemberBalance struct {
	MemberID   string          `json:"memberId"`
	MemberName string          `json:"memberName"`
	Paid       decimal.Decimal `json:"paid"`
	Owed       decimal.Decimal `json:"owed"`
	Net        decimal.Decimal `json:"net"` // positive = owed money
}

// Settlement is one payment that settles part of the trip's debts.
type Settlement struct {
	From     string          `json:"from"`
	FromName string          `json:"fromName"`
	To       string          `json:"to"`
	ToName   string          `json:"toName"`
	Amount   decimal.Decimal `json:"amount"`
}

type AddExpenseRequest struct {
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      string          `json:"paidBy"`

	// SplitAmong defaults to the whole roster when empty.
	SplitAmong []string `json:"splitAmong"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripID string `json:"tripId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	TripID    string `json:"tripId"`
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type GetSettlementsRequest struct {
	TripID string `json:"tripId"`
}

type GetSettlementsResponse struct {
	TotalSpent  decimal.Decimal  `json:"totalSpent"`
	Balances    []*MemberBalance `json:"balances"`
	Settlements []*Settlement    `json:"settlements"`
}
