package splitex

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Expense is a shared cost paid by one participant on behalf of a set of
// beneficiaries. The id and date are assigned at creation time and are
// immutable; the remaining fields can be patched with an ExpenseUpdate.
// Beneficiary order is irrelevant for calculation but preserved for display.
type Expense struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Payer         string          `json:"payer"`
	Beneficiaries []string        `json:"beneficiaries"`
	Description   string          `json:"description"`
	Date          Datetime        `json:"date"`
}

func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID &&
		e.Amount.Equal(o.Amount) &&
		e.Currency == o.Currency &&
		e.Payer == o.Payer &&
		slices.Equal(e.Beneficiaries, o.Beneficiaries) &&
		e.Description == o.Description &&
		e.Date.Equal(o.Date)
}

// ExpenseUpdate is a partial update of an expense. A nil field keeps the
// stored value; a set field replaces it.
type ExpenseUpdate struct {
	Amount        *decimal.Decimal
	Currency      *string
	Payer         *string
	Beneficiaries []string
	Description   *string
}

// apply merges the update into the stored expense field by field.
func (u ExpenseUpdate) apply(e Expense) Expense {
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Currency != nil {
		e.Currency = *u.Currency
	}
	if u.Payer != nil {
		e.Payer = *u.Payer
	}
	if u.Beneficiaries != nil {
		e.Beneficiaries = slices.Clone(u.Beneficiaries)
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	return e
}

// Payment records a transfer that already happened outside the expense
// ledger, settling part of the payer's outstanding obligation. It is a
// historical record kept separately from expense-derived balances.
type Payment struct {
	ID       string          `json:"id"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Date     Datetime        `json:"date"`
}

func (p Payment) Equal(o Payment) bool {
	return p.ID == o.ID &&
		p.From == o.From &&
		p.To == o.To &&
		p.Amount.Equal(o.Amount) &&
		p.Currency == o.Currency &&
		p.Date.Equal(o.Date)
}
