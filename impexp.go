package splitex

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single document, and easy to hand-edit.
//
// Export mirrors the snapshot layout: one JSON object with the four stored
// collections. Import validates each record against the expected shape and
// coerces lenient inputs (numeric strings, date-only timestamps) into the
// canonical form. A malformed record is dropped, not fatal; only a
// top-level parse failure aborts the whole import.

// Export writes the full ledger state to w in the import/export format.
func (l *Ledger) Export(w io.Writer) error {
	l.mu.Lock()
	snap := l.snapshot()
	l.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state for export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	return nil
}

// Import replaces the ledger collections with the validated content of r.
// The in-memory state is left unchanged when the top-level document cannot
// be parsed. Individually malformed records are dropped with a log line and
// the import keeps the well-formed rest.
func (l *Ledger) Import(r io.Reader) error {
	// Raw messages per collection so that one bad record cannot poison the
	// whole document.
	var doc struct {
		Participants []json.RawMessage `json:"participants"`
		Expenses     []json.RawMessage `json:"expenses"`
		Currencies   []json.RawMessage `json:"currencies"`
		Payments     []json.RawMessage `json:"payments"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("could not parse import data: %w", err)
	}

	snap := &Snapshot{}
	for _, raw := range doc.Participants {
		p, err := importParticipant(raw)
		if err != nil {
			log.Printf("import: dropping participant %s: %v", raw, err)
			continue
		}
		snap.Participants = append(snap.Participants, p)
	}
	for _, raw := range doc.Expenses {
		e, err := importExpense(raw)
		if err != nil {
			log.Printf("import: dropping expense %s: %v", raw, err)
			continue
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	for _, raw := range doc.Currencies {
		c, err := importCurrency(raw)
		if err != nil {
			log.Printf("import: dropping currency %s: %v", raw, err)
			continue
		}
		snap.Currencies = append(snap.Currencies, c)
	}
	for _, raw := range doc.Payments {
		p, err := importPayment(raw)
		if err != nil {
			log.Printf("import: dropping payment %s: %v", raw, err)
			continue
		}
		snap.Payments = append(snap.Payments, p)
	}

	l.mu.Lock()
	l.restore(snap)
	err := l.save()
	l.mu.Unlock()
	l.bus.notify()
	return err
}

// importParticipant validates a single participant record.
func importParticipant(raw json.RawMessage) (Participant, error) {
	var p Participant
	if err := json.Unmarshal(raw, &p); err != nil {
		return Participant{}, err
	}
	if p.ID == "" {
		return Participant{}, fmt.Errorf("missing id")
	}
	if p.Name == "" {
		return Participant{}, fmt.Errorf("missing name")
	}
	return p, nil
}

// importExpense validates and coerces a single expense record. Amounts given
// as numeric strings are coerced to numbers by the decimal parser; dates are
// normalized to the canonical timestamp format.
func importExpense(raw json.RawMessage) (Expense, error) {
	// Lenient intermediate shape: ignore extra fields, coerce where possible.
	var je struct {
		ID            string          `json:"id"`
		Amount        decimal.Decimal `json:"amount"`
		Currency      string          `json:"currency"`
		Payer         string          `json:"payer"`
		Beneficiaries []string        `json:"beneficiaries"`
		Description   string          `json:"description"`
		Date          Datetime        `json:"date"`
	}
	if err := json.Unmarshal(raw, &je); err != nil {
		return Expense{}, err
	}
	if !je.Amount.IsPositive() {
		return Expense{}, fmt.Errorf("amount must be positive, got %s", je.Amount)
	}
	if je.Currency == "" {
		return Expense{}, fmt.Errorf("missing currency")
	}
	if je.Payer == "" {
		return Expense{}, fmt.Errorf("missing payer")
	}
	if len(je.Beneficiaries) == 0 {
		return Expense{}, fmt.Errorf("missing beneficiaries")
	}
	if je.Date.IsZero() {
		return Expense{}, fmt.Errorf("missing date")
	}
	if je.ID == "" {
		je.ID = newID()
	}
	return Expense{
		ID:            je.ID,
		Amount:        je.Amount,
		Currency:      je.Currency,
		Payer:         je.Payer,
		Beneficiaries: je.Beneficiaries,
		Description:   je.Description,
		Date:          je.Date,
	}, nil
}

// importCurrency validates a single currency record.
func importCurrency(raw json.RawMessage) (Currency, error) {
	var c Currency
	if err := json.Unmarshal(raw, &c); err != nil {
		return Currency{}, err
	}
	if c.Code == "" {
		return Currency{}, fmt.Errorf("missing code")
	}
	if c.Code != BaseCurrency && !ValidateRate(c.Rate) {
		return Currency{}, fmt.Errorf("invalid exchange rate %s", c.Rate)
	}
	return c, nil
}

// importPayment validates and coerces a single payment record.
func importPayment(raw json.RawMessage) (Payment, error) {
	var jp struct {
		ID       string          `json:"id"`
		From     string          `json:"from"`
		To       string          `json:"to"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Date     Datetime        `json:"date"`
	}
	if err := json.Unmarshal(raw, &jp); err != nil {
		return Payment{}, err
	}
	if jp.From == "" || jp.To == "" {
		return Payment{}, fmt.Errorf("missing payer or recipient")
	}
	if jp.From == jp.To {
		return Payment{}, fmt.Errorf("payer and recipient must differ")
	}
	if !jp.Amount.IsPositive() {
		return Payment{}, fmt.Errorf("amount must be positive, got %s", jp.Amount)
	}
	if jp.Currency == "" {
		return Payment{}, fmt.Errorf("missing currency")
	}
	if jp.Date.IsZero() {
		return Payment{}, fmt.Errorf("missing date")
	}
	if jp.ID == "" {
		jp.ID = newID()
	}
	return Payment{
		ID:       jp.ID,
		From:     jp.From,
		To:       jp.To,
		Amount:   jp.Amount,
		Currency: jp.Currency,
		Date:     jp.Date,
	}, nil
}
