package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewExpenseService creates a new ExpenseService. m may be nil.
func NewExpenseService(store storage.Store, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{store: store, metrics: m}
}

// AddExpense records an expense paid by one member and split equally.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("AddExpense request received",
		"trip_id", tripID,
		"amount", req.Msg.Amount,
		"paid_by", req.Msg.PaidBy,
		"split_count", len(req.Msg.SplitAmong),
	)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}

	amount := req.Msg.Amount
	if !amount.IsPositive() {
		return nil, invalidArgument("amount must be positive, got %s", amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return nil, invalidArgument("amount has more than two decimal places: %s", amount)
	}

	paidBy := models.MemberID(req.Msg.PaidBy)
	if !trip.HasMember(paidBy) {
		return nil, invalidArgument("payer %q is not on the trip roster", req.Msg.PaidBy)
	}

	split := trip.MemberIDs()
	if len(req.Msg.SplitAmong) > 0 {
		if split, err = rosterIDs(trip, req.Msg.SplitAmong); err != nil {
			return nil, err
		}
	}

	expense := &models.Expense{
		TripID:      tripID,
		Description: strings.TrimSpace(req.Msg.Description),
		Amount:      amount,
		PaidBy:      paidBy,
		SplitAmong:  split,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense added", "trip_id", tripID, "expense_id", expense.ID)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses returns a trip's expenses, oldest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("ListExpenses request received", "trip_id", tripID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toAPIExpense(&expenses[i])
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes an expense from a trip.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	expenseID := models.ExpenseID(req.Msg.ExpenseID)
	slog.Info("DeleteExpense request received", "trip_id", tripID, "expense_id", expenseID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if expense.TripID != tripID {
		return nil, notInTrip("expense", string(expenseID))
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "trip_id", tripID, "expense_id", expenseID)
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetSettlements computes member balances and the minimal set of payments
// that settles them.
func (s *ExpenseService) GetSettlements(ctx context.Context, req *connect.Request[api.GetSettlementsRequest]) (*connect.Response[api.GetSettlementsResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("GetSettlements request received", "trip_id", tripID)

	trip, err := loadTrip(ctx, s.store, tripID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetSettlements failed - could not list expenses", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	balances := calculator.ComputeBalances(expenses, trip.Members)
	settlements := calculator.ComputeSettlements(expenses, trip.Members)
	s.metrics.SettlementsComputed(len(settlements))

	names := make(map[models.MemberID]string, len(trip.Members))
	for _, m := range trip.Members {
		names[m.ID] = m.Name
	}
	nameOf := func(id models.MemberID) string {
		if name, ok := names[id]; ok {
			return name
		}
		return string(id)
	}

	total := decimal.Zero
	for _, e := range expenses {
		if _, ok := calculator.Share(e); ok {
			total = total.Add(e.Amount)
		}
	}

	resp := &api.GetSettlementsResponse{
		TotalSpent:  total,
		Balances:    make([]*api.MemberBalance, len(balances)),
		Settlements: make([]*api.Settlement, len(settlements)),
	}
	for i, b := range balances {
		resp.Balances[i] = &api.MemberBalance{
			MemberID:   string(b.MemberID),
			MemberName: nameOf(b.MemberID),
			Paid:       b.Paid.Round(2),
			Owed:       b.Owed.Round(2),
			Net:        b.Net.Round(2),
		}
	}
	for i, st := range settlements {
		resp.Settlements[i] = &api.Settlement{
			From:     string(st.From),
			FromName: nameOf(st.From),
			To:       string(st.To),
			ToName:   nameOf(st.To),
			Amount:   st.Amount,
		}
	}

	slog.Info("GetSettlements successful",
		"trip_id", tripID,
		"expenses_count", len(expenses),
		"settlements_count", len(settlements),
	)
	return connect.NewResponse(resp), nil
}
