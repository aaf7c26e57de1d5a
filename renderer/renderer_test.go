package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/SLASHLogin/splitex"
	"github.com/shopspring/decimal"
)

func newTestLedger(t *testing.T) *splitex.Ledger {
	t.Helper()
	l, err := splitex.NewLedger()
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRenderBalances(t *testing.T) {
	l := newTestLedger(t)
	ps := l.Participants()
	var ids []string
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	if _, err := l.AddExpense(decimal.NewFromInt(100), "PLN", ps[0].ID, ids, "dinner"); err != nil {
		t.Fatal(err)
	}

	got := RenderBalances(NewBalances(l))

	if !strings.HasPrefix(got, "# Balances on ") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "| Participant | Paid | Owes | Net |") {
		t.Errorf("missing table header:\n%s", got)
	}
	// One row per participant, payer first.
	for _, p := range ps {
		if !strings.Contains(got, "| "+p.Name+" |") {
			t.Errorf("missing row for %s:\n%s", p.Name, got)
		}
	}
	// The payer's net is positive, everyone else owes.
	if strings.Count(got, "| +") != 1 {
		t.Errorf("want exactly one positive net row:\n%s", got)
	}
}

func TestRenderSettlement(t *testing.T) {
	l := newTestLedger(t)
	ps := l.Participants()
	var ids []string
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	if _, err := l.AddExpense(decimal.NewFromInt(100), "PLN", ps[0].ID, ids, ""); err != nil {
		t.Fatal(err)
	}

	got := RenderSettlement(NewSettlement(l))
	if !strings.Contains(got, "| From | To | Amount |") {
		t.Errorf("missing table header:\n%s", got)
	}
	// Three debtors each pay the single creditor.
	if n := strings.Count(got, "| "+ps[0].Name+" |"); n != 3 {
		t.Errorf("creditor %s appears in %d rows, want 3:\n%s", ps[0].Name, n, got)
	}
}

func TestRenderSettlement_Empty(t *testing.T) {
	l := newTestLedger(t)
	got := RenderSettlement(NewSettlement(l))
	if !strings.Contains(got, "All settled, nothing to transfer.") {
		t.Errorf("empty plan rendering:\n%s", got)
	}
	if strings.Contains(got, "| From |") {
		t.Errorf("empty plan must not render a table:\n%s", got)
	}
}

func TestRenderLog_DateRange(t *testing.T) {
	l := newTestLedger(t)
	ps := l.Participants()
	if _, err := l.AddExpense(decimal.NewFromInt(40), "PLN", ps[0].ID, []string{ps[1].ID}, "inside"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RegisterPayment(ps[1].ID, ps[0].ID, decimal.NewFromInt(10), "PLN"); err != nil {
		t.Fatal(err)
	}

	all := NewLog(l, splitex.Datetime{}, splitex.Datetime{})
	if len(all.Expenses) != 1 || len(all.Payments) != 1 {
		t.Fatalf("unbounded log = %d expenses, %d payments", len(all.Expenses), len(all.Payments))
	}

	got := RenderLog(all)
	if !strings.Contains(got, "## Expenses") || !strings.Contains(got, "## Payments") {
		t.Errorf("missing sections:\n%s", got)
	}
	if !strings.Contains(got, "| inside |") {
		t.Errorf("missing expense row:\n%s", got)
	}

	// A range entirely in the past filters everything out.
	past := splitex.NewDatetime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	empty := NewLog(l, splitex.Datetime{}, past)
	if len(empty.Expenses) != 0 || len(empty.Payments) != 0 {
		t.Fatalf("past-bounded log = %d expenses, %d payments, want none", len(empty.Expenses), len(empty.Payments))
	}
	if !strings.Contains(RenderLog(empty), "Nothing recorded yet.") {
		t.Error("empty log rendering")
	}
}

func TestRenderRates(t *testing.T) {
	l := newTestLedger(t)
	got := RenderRates(NewRates(l))
	if !strings.Contains(got, "Base currency: **PLN**") {
		t.Errorf("missing base currency:\n%s", got)
	}
	for _, code := range []string{"PLN", "EUR", "USD", "GBP"} {
		if !strings.Contains(got, "| "+code+" |") {
			t.Errorf("missing rate row for %s:\n%s", code, got)
		}
	}
}
