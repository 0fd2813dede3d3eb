package service

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/pkg/api"
)

func addExpense(t *testing.T, env *testEnv, tripID, amount, paidBy string, split ...string) *api.Expense {
	t.Helper()
	resp, err := env.expenses.AddExpense(t.Context(), as(t, env, "alice", &api.AddExpenseRequest{
		TripID:      tripID,
		Description: "expense",
		Amount:      decimal.RequireFromString(amount),
		PaidBy:      paidBy,
		SplitAmong:  split,
	}))
	require.NoError(t, err)
	return resp.Msg.Expense
}

func TestGetSettlements(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Alice", "Bob", "Carol")
	a, b, c := trip.Members[0].ID, trip.Members[1].ID, trip.Members[2].ID

	// Empty split defaults to the whole roster.
	first := addExpense(t, env, trip.ID, "90", a)
	assert.Equal(t, []string{a, b, c}, first.SplitAmong)
	addExpense(t, env, trip.ID, "30", b, b, c)

	resp, err := env.expenses.GetSettlements(t.Context(), as(t, env, "alice", &api.GetSettlementsRequest{TripID: trip.ID}))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(120).Equal(resp.Msg.TotalSpent))

	nets := map[string]string{}
	for _, bal := range resp.Msg.Balances {
		nets[bal.MemberName] = bal.Net.StringFixed(2)
	}
	assert.Equal(t, map[string]string{"Alice": "60.00", "Bob": "-15.00", "Carol": "-45.00"}, nets)

	require.Len(t, resp.Msg.Settlements, 2)
	assert.Equal(t, "Carol", resp.Msg.Settlements[0].FromName)
	assert.Equal(t, "Alice", resp.Msg.Settlements[0].ToName)
	assert.Equal(t, "45.00", resp.Msg.Settlements[0].Amount.StringFixed(2))
	assert.Equal(t, "Bob", resp.Msg.Settlements[1].FromName)
	assert.Equal(t, "15.00", resp.Msg.Settlements[1].Amount.StringFixed(2))
}

func TestGetSettlements_Empty(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Alice", "Bob")

	resp, err := env.expenses.GetSettlements(t.Context(), as(t, env, "alice", &api.GetSettlementsRequest{TripID: trip.ID}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Settlements)
	assert.Len(t, resp.Msg.Balances, 2)
	assert.True(t, resp.Msg.TotalSpent.IsZero())
}

func TestAddExpense_Validation(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Alice", "Bob")
	a := trip.Members[0].ID

	tests := []struct {
		name   string
		amount string
		paidBy string
		split  []string
	}{
		{"zero amount", "0", a, nil},
		{"negative amount", "-5", a, nil},
		{"sub-cent amount", "10.005", a, nil},
		{"payer not on roster", "10", "stranger", nil},
		{"split not on roster", "10", a, []string{a, "stranger"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.expenses.AddExpense(t.Context(), as(t, env, "alice", &api.AddExpenseRequest{
				TripID:     trip.ID,
				Amount:     decimal.RequireFromString(tt.amount),
				PaidBy:     tt.paidBy,
				SplitAmong: tt.split,
			}))
			requireCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestDeleteExpense(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Alice", "Bob")
	other := createTrip(t, env, "Zed")
	expense := addExpense(t, env, trip.ID, "40", trip.Members[0].ID)

	// An expense id from another trip is not found there.
	_, err := env.expenses.DeleteExpense(t.Context(), as(t, env, "alice", &api.DeleteExpenseRequest{
		TripID:    other.ID,
		ExpenseID: expense.ID,
	}))
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.expenses.DeleteExpense(t.Context(), as(t, env, "alice", &api.DeleteExpenseRequest{
		TripID:    trip.ID,
		ExpenseID: expense.ID,
	}))
	require.NoError(t, err)

	list, err := env.expenses.ListExpenses(t.Context(), as(t, env, "alice", &api.ListExpensesRequest{TripID: trip.ID}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Expenses)
}
