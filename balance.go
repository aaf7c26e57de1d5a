package splitex

// Balance is the derived financial position of one participant, in base
// currency. It is recomputed from expenses, never stored.
type Balance struct {
	ParticipantID string
	TotalPaid     Money
	TotalOwed     Money
	Net           Money // TotalPaid - TotalOwed
}

// computeBalances derives one balance per participant from the expenses.
// Each expense amount is converted to the base currency; the payer is
// credited with the full converted amount, and the amount is split evenly
// across the beneficiaries (equal-split, no weighting). Expense references
// to unknown participant ids are skipped by the math: dangling references
// are a display concern, not an accounting one.
func computeBalances(participants []Participant, expenses []Expense, currencies *Currencies) []Balance {
	balances := make([]Balance, len(participants))
	index := make(map[string]int, len(participants))
	zero := M(0, BaseCurrency)
	for i, p := range participants {
		balances[i] = Balance{ParticipantID: p.ID, TotalPaid: zero, TotalOwed: zero, Net: zero}
		index[p.ID] = i
	}

	for _, e := range expenses {
		converted := currencies.ToBase(e.Amount, e.Currency)
		if i, ok := index[e.Payer]; ok {
			balances[i].TotalPaid = balances[i].TotalPaid.Add(converted)
		}
		if len(e.Beneficiaries) == 0 {
			continue
		}
		share := converted.DivBy(len(e.Beneficiaries))
		for _, id := range e.Beneficiaries {
			if i, ok := index[id]; ok {
				balances[i].TotalOwed = balances[i].TotalOwed.Add(share)
			}
		}
	}

	for i := range balances {
		balances[i].Net = balances[i].TotalPaid.Sub(balances[i].TotalOwed)
	}
	return balances
}

// netPayments folds registered payments into the net balances: a payment
// reduces the payer's debt and the recipient's credit by its base-currency
// amount.
func netPayments(balances []Balance, payments []Payment, currencies *Currencies) []Balance {
	index := make(map[string]int, len(balances))
	for i, b := range balances {
		index[b.ParticipantID] = i
	}
	for _, p := range payments {
		converted := currencies.ToBase(p.Amount, p.Currency)
		if i, ok := index[p.From]; ok {
			balances[i].Net = balances[i].Net.Add(converted)
		}
		if i, ok := index[p.To]; ok {
			balances[i].Net = balances[i].Net.Sub(converted)
		}
	}
	return balances
}
