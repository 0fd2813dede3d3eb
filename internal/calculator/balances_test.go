package calculator

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
)

func TestComputeBalances(t *testing.T) {
	t.Run("roster members start at zero", func(t *testing.T) {
		balances := ComputeBalances(nil, roster("A", "B"))

		require.Len(t, balances, 2)
		for _, bal := range balances {
			assert.True(t, bal.Net.IsZero(), "%s net = %s", bal.MemberID, bal.Net)
		}
	})

	t.Run("payer is credited and split members debited", func(t *testing.T) {
		balances := ComputeBalances(
			[]models.Expense{expense("120", "A", "A", "B", "C", "D")},
			roster("A", "B", "C", "D"),
		)

		want := map[models.MemberID]string{"A": "90", "B": "-30", "C": "-30", "D": "-30"}
		require.Len(t, balances, 4)
		for _, bal := range balances {
			assert.True(t, bal.Net.Equal(decimal.RequireFromString(want[bal.MemberID])),
				"%s net = %s, want %s", bal.MemberID, bal.Net, want[bal.MemberID])
		}
		assert.True(t, balances[0].Paid.Equal(decimal.NewFromInt(120)))
		assert.True(t, balances[0].Owed.Equal(decimal.NewFromInt(30)))
	})

	t.Run("members outside the roster are appended in first-seen order", func(t *testing.T) {
		balances := ComputeBalances(
			[]models.Expense{expense("20", "X", "A", "Y")},
			roster("A"),
		)

		ids := make([]models.MemberID, len(balances))
		for i, bal := range balances {
			ids[i] = bal.MemberID
		}
		assert.Equal(t, []models.MemberID{"A", "X", "Y"}, ids)
	})
}

func TestComputeSettlements(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		members  []models.Member
		want     []models.Settlement
	}{
		{
			name:    "no expenses",
			members: roster("A", "B"),
			want:    nil,
		},
		{
			name: "one payer covers everybody",
			expenses: []models.Expense{
				expense("120", "A", "A", "B", "C", "D"),
			},
			members: roster("A", "B", "C", "D"),
			want: []models.Settlement{
				settlement("B", "A", "30"),
				settlement("C", "A", "30"),
				settlement("D", "A", "30"),
			},
		},
		{
			name: "everybody pays an equal share",
			expenses: []models.Expense{
				expense("40", "A", "A", "B"),
				expense("40", "B", "A", "B"),
			},
			members: roster("A", "B"),
			want:    nil,
		},
		{
			name: "empty split is ignored",
			expenses: []models.Expense{
				expense("40", "A"),
			},
			members: roster("A", "B"),
			want:    nil,
		},
		{
			name: "largest debtor pays largest creditor first",
			expenses: []models.Expense{
				expense("90", "A", "A", "B", "C"),
				expense("30", "B", "B", "C", "D"),
			},
			// A: +60, B: -30+30-10 = -10, C: -30-10 = -40, D: -10
			members: roster("A", "B", "C", "D"),
			want: []models.Settlement{
				settlement("C", "A", "40"),
				settlement("B", "A", "10"),
				settlement("D", "A", "10"),
			},
		},
		{
			name: "thirds are rounded to cents",
			expenses: []models.Expense{
				expense("100", "A", "A", "B", "C"),
			},
			members: roster("A", "B", "C"),
			want: []models.Settlement{
				settlement("B", "A", "33.33"),
				settlement("C", "A", "33.33"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSettlements(tt.expenses, tt.members)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].From, got[i].From, "settlement %d from", i)
				assert.Equal(t, tt.want[i].To, got[i].To, "settlement %d to", i)
				assert.True(t, tt.want[i].Amount.Equal(got[i].Amount),
					"settlement %d amount = %s, want %s", i, got[i].Amount, tt.want[i].Amount)
			}
		})
	}
}

func TestComputeSettlementsConservation(t *testing.T) {
	t.Run("mixed splits", func(t *testing.T) {
		assertSettlementInvariants(t, []models.Expense{
			expense("212.40", "A", "A", "B", "C", "D", "E"),
			expense("75", "B", "B", "C"),
			expense("18.99", "C", "A", "E"),
			expense("310", "D", "A", "B", "C", "D", "E"),
			expense("42.50", "E", "D"),
		}, roster("A", "B", "C", "D", "E"))
	})

	t.Run("repeating thirds do not short the last debtor", func(t *testing.T) {
		// Each of B..F owes 13.1066..., A is owed 65.5333...
		expenses := []models.Expense{expense("78.64", "A", "A", "B", "C", "D", "E", "F")}
		members := roster("A", "B", "C", "D", "E", "F")

		got := ComputeSettlements(expenses, members)
		require.Len(t, got, 5)
		for _, s := range got {
			assert.Equal(t, models.MemberID("A"), s.To)
			assert.True(t, s.Amount.Equal(decimal.RequireFromString("13.11")), "%s pays %s", s.From, s.Amount)
		}
		assertSettlementInvariants(t, expenses, members)
	})

	t.Run("random trips", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for n := range 2000 {
			expenses, members := randomTrip(rng)
			if !assertSettlementInvariants(t, expenses, members) {
				t.Fatalf("trip %d: expenses %+v", n, expenses)
			}
		}
	})
}

// assertSettlementInvariants checks that every debtor pays their debt within a
// cent, payments are positive whole cents, and the plan needs at most
// debtors+creditors-1 transfers.
func assertSettlementInvariants(t *testing.T, expenses []models.Expense, members []models.Member) bool {
	t.Helper()

	balances := ComputeBalances(expenses, members)
	settlements := ComputeSettlements(expenses, members)

	ok := true
	paid := make(map[models.MemberID]decimal.Decimal)
	for _, s := range settlements {
		paid[s.From] = paid[s.From].Add(s.Amount)
		ok = assert.True(t, s.Amount.IsPositive(), "%s -> %s pays %s", s.From, s.To, s.Amount) && ok
		ok = assert.True(t, s.Amount.Equal(s.Amount.Round(2)), "amount %s not in cents", s.Amount) && ok
	}

	var debtors, creditors int
	for _, bal := range balances {
		switch {
		case bal.Net.LessThan(settledTolerance.Neg()):
			debtors++
		case bal.Net.GreaterThan(settledTolerance):
			creditors++
		}

		owes := decimal.Max(decimal.Zero, bal.Net.Neg())
		diff := paid[bal.MemberID].Sub(owes).Abs()
		ok = assert.True(t, diff.LessThanOrEqual(settledTolerance),
			"%s paid %s, owes %s", bal.MemberID, paid[bal.MemberID], owes) && ok
	}

	if len(settlements) > 0 {
		ok = assert.LessOrEqual(t, len(settlements), debtors+creditors-1) && ok
	}
	return ok
}

// randomTrip builds 2-10 members and 1-8 expenses between 1.00 and 500.00,
// each paid by a random member and split among a random non-empty subset.
func randomTrip(rng *rand.Rand) ([]models.Expense, []models.Member) {
	ids := make([]string, 2+rng.IntN(9))
	for i := range ids {
		ids[i] = fmt.Sprintf("m%d", i)
	}

	expenses := make([]models.Expense, 1+rng.IntN(8))
	for i := range expenses {
		cents := int64(100 + rng.IntN(49901))
		perm := rng.Perm(len(ids))
		split := make([]string, 1+rng.IntN(len(ids)))
		for k := range split {
			split[k] = ids[perm[k]]
		}
		expenses[i] = models.Expense{
			Amount:     decimal.New(cents, -2),
			PaidBy:     models.MemberID(ids[rng.IntN(len(ids))]),
			SplitAmong: models.MemberIDs(split),
		}
	}
	return expenses, roster(ids...)
}

func settlement(from, to, amount string) models.Settlement {
	return models.Settlement{
		From:   models.MemberID(from),
		To:     models.MemberID(to),
		Amount: decimal.RequireFromString(amount),
	}
}
