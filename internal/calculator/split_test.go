package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/tripwiser/internal/models"
)

func TestShare(t *testing.T) {
	tests := []struct {
		name      string
		expense   models.Expense
		wantShare string
		wantOK    bool
	}{
		{
			name:      "four-way split",
			expense:   expense("120", "A", "A", "B", "C", "D"),
			wantShare: "30",
			wantOK:    true,
		},
		{
			name:      "uneven split keeps precision",
			expense:   expense("10", "A", "A", "B", "C"),
			wantShare: "3.3333333333333333",
			wantOK:    true,
		},
		{
			name:    "empty split is ignored",
			expense: expense("50", "A"),
			wantOK:  false,
		},
		{
			name:    "zero amount is ignored",
			expense: expense("0", "A", "A", "B"),
			wantOK:  false,
		},
		{
			name:    "negative amount is ignored",
			expense: expense("-20", "A", "A", "B"),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, ok := Share(tt.expense)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, share.Equal(decimal.RequireFromString(tt.wantShare)),
					"share = %s, want %s", share, tt.wantShare)
			}
		})
	}
}

func TestSplitExpense(t *testing.T) {
	splits := SplitExpense(expense("90", "A", "A", "B", "B"))

	assert.Len(t, splits, 2)
	assert.True(t, splits["A"].Equal(decimal.NewFromInt(30)), "A owes %s", splits["A"])
	assert.True(t, splits["B"].Equal(decimal.NewFromInt(60)), "B owes %s", splits["B"])

	assert.Nil(t, SplitExpense(expense("90", "A")))
}

// expense builds an expense paid by payer and split among the given members.
func expense(amount string, payer string, split ...string) models.Expense {
	return models.Expense{
		Amount:     decimal.RequireFromString(amount),
		PaidBy:     models.MemberID(payer),
		SplitAmong: models.MemberIDs(split),
	}
}

func roster(ids ...string) []models.Member {
	members := make([]models.Member, len(ids))
	for i, id := range ids {
		members[i] = models.Member{ID: models.MemberID(id), Name: id}
	}
	return members
}
