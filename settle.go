package splitex

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Transfer is a recommended settlement action in base currency: from pays to.
type Transfer struct {
	From   string
	To     string
	Amount Money
}

// settleTolerance is the residual balance below which a participant is
// considered settled, in base currency units.
var settleTolerance = decimal.RequireFromString("0.01")

// planTransfers computes a small set of transfers that brings every net
// balance to (approximately) zero, using greedy largest-first matching:
// the most indebted participant always pays the largest creditor next.
// The exact ordering rule matters for reproducible output, so the sorts are
// stable and the queues are always matched at their heads.
func planTransfers(balances []Balance) []Transfer {
	type remaining struct {
		id      string
		balance decimal.Decimal
	}

	var debtors, creditors []remaining
	for _, b := range balances {
		switch {
		case b.Net.IsNegative():
			debtors = append(debtors, remaining{id: b.ParticipantID, balance: b.Net.Amount()})
		case b.Net.IsPositive():
			creditors = append(creditors, remaining{id: b.ParticipantID, balance: b.Net.Amount()})
		}
	}
	slices.SortStableFunc(debtors, func(a, b remaining) int { return a.balance.Cmp(b.balance) })
	slices.SortStableFunc(creditors, func(a, b remaining) int { return b.balance.Cmp(a.balance) })

	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		debtor, creditor := &debtors[0], &creditors[0]

		amount := decimal.Min(debtor.balance.Abs(), creditor.balance)
		transfers = append(transfers, Transfer{
			From:   debtor.id,
			To:     creditor.id,
			Amount: M(amount.Round(2), BaseCurrency),
		})

		// Reduce both sides by the unrounded amount.
		debtor.balance = debtor.balance.Add(amount)
		creditor.balance = creditor.balance.Sub(amount)

		if debtor.balance.Abs().LessThan(settleTolerance) {
			debtors = debtors[1:]
		}
		if creditor.balance.Abs().LessThan(settleTolerance) {
			creditors = creditors[1:]
		}
	}
	return transfers
}
