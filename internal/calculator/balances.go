package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// settledTolerance absorbs division noise: balances within a cent of zero are settled.
var settledTolerance = decimal.New(1, -2)

// ComputeBalances aggregates who paid what and who owes what across expenses.
//
// Every roster member gets an entry, even with no expenses. Members that only
// appear on expenses are appended after the roster in first-seen order.
//
// Algorithm:
// - For each expense: payer contributed +amount, each split member owes amount/len(split)
// - Aggregate: net = paid - owed
func ComputeBalances(expenses []models.Expense, members []models.Member) []models.MemberBalance {
	order := make([]models.MemberID, 0, len(members))
	balances := make(map[models.MemberID]*models.MemberBalance, len(members))

	track := func(id models.MemberID) *models.MemberBalance {
		if bal, exists := balances[id]; exists {
			return bal
		}
		bal := &models.MemberBalance{MemberID: id}
		balances[id] = bal
		order = append(order, id)
		return bal
	}

	for _, m := range members {
		track(m.ID)
	}

	for _, expense := range expenses {
		share, ok := Share(expense)
		if !ok {
			continue
		}

		payer := track(expense.PaidBy)
		payer.Paid = payer.Paid.Add(expense.Amount)

		for _, id := range expense.SplitAmong {
			bal := track(id)
			bal.Owed = bal.Owed.Add(share)
		}
	}

	result := make([]models.MemberBalance, len(order))
	for i, id := range order {
		bal := balances[id]
		bal.Net = bal.Paid.Sub(bal.Owed)
		result[i] = *bal
	}
	return result
}

// party is a debtor or creditor with the amount still to move.
type party struct {
	id        models.MemberID
	total     decimal.Decimal
	remaining decimal.Decimal
	paid      decimal.Decimal
}

// ComputeSettlements converts expenses into payments that zero out every balance.
//
// Debtors and creditors are each ordered by descending imbalance (roster order on
// ties) and matched greedily, largest against largest. Each match moves the smaller
// of the two remaining amounts and records it rounded to cents. A party whose
// remaining amount drops below a cent is done. A debtor's last payment absorbs the
// rounding of earlier ones, so their payments add up to their debt rounded to
// cents. The result has at most debtors+creditors-1 entries.
func ComputeSettlements(expenses []models.Expense, members []models.Member) []models.Settlement {
	var debtors, creditors []party
	for _, bal := range ComputeBalances(expenses, members) {
		switch {
		case bal.Net.LessThan(settledTolerance.Neg()):
			debtors = append(debtors, party{id: bal.MemberID, total: bal.Net.Neg(), remaining: bal.Net.Neg()})
		case bal.Net.GreaterThan(settledTolerance):
			creditors = append(creditors, party{id: bal.MemberID, total: bal.Net, remaining: bal.Net})
		}
	}

	largestFirst := func(a, b party) int { return b.remaining.Cmp(a.remaining) }
	slices.SortStableFunc(debtors, largestFirst)
	slices.SortStableFunc(creditors, largestFirst)

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		payment := amount.Round(2)
		debtorDone := debtor.remaining.LessThan(settledTolerance)
		if debtorDone {
			payment = debtor.total.Round(2).Sub(debtor.paid)
		}
		debtor.paid = debtor.paid.Add(payment)

		if payment.IsPositive() {
			settlements = append(settlements, models.Settlement{
				From:   debtor.id,
				To:     creditor.id,
				Amount: payment,
			})
		}

		if debtorDone {
			i++
		}
		if creditor.remaining.LessThan(settledTolerance) {
			j++
		}
	}

	return settlements
}
