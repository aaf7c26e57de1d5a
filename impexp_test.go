package splitex

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

// jpath extracts a value from an exported document with a jsonpath query.
func jpath(t *testing.T, doc, path string) any {
	t.Helper()
	var jobj any
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		t.Fatalf("jsonpath %q: %v", path, err)
	}
	return val
}

func TestExportImport_RoundTrip(t *testing.T) {
	l, ps := newTestLedger("A", "B")

	if _, err := l.AddExpense(dec("100.50"), "EUR", ps[0].ID, []string{ps[0].ID, ps[1].ID}, "hotel"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RegisterPayment(ps[1].ID, ps[0].ID, dec("20"), "PLN"); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := l.Export(&sb); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	doc := sb.String()

	if got := jpath(t, doc, "$.expenses[0].amount"); got != 100.50 {
		t.Errorf("exported amount = %v, want 100.50", got)
	}
	if got := jpath(t, doc, "$.expenses[0].currency"); got != "EUR" {
		t.Errorf("exported currency = %v, want EUR", got)
	}
	if got := jpath(t, doc, "$.payments[0].from"); got != ps[1].ID {
		t.Errorf("exported payment.from = %v, want %v", got, ps[1].ID)
	}

	// Importing the export into a fresh ledger reproduces the state.
	fresh, err := NewLedger()
	if err != nil {
		t.Fatal(err)
	}
	if err := fresh.Import(strings.NewReader(doc)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if got, want := fresh.Expenses(), l.Expenses(); len(got) != len(want) || !got[0].Equal(want[0]) {
		t.Errorf("imported expenses = %+v, want %+v", got, want)
	}
	if got, want := fresh.Payments(), l.Payments(); len(got) != len(want) || !got[0].Equal(want[0]) {
		t.Errorf("imported payments = %+v, want %+v", got, want)
	}
	if got := len(fresh.Participants()); got != 2 {
		t.Errorf("imported participants = %d, want 2", got)
	}
}

func TestImport_MalformedTopLevelAborts(t *testing.T) {
	l, ps := newTestLedger("A", "B")
	if _, err := l.AddExpense(dec("10"), "PLN", ps[0].ID, []string{ps[1].ID}, "keep me"); err != nil {
		t.Fatal(err)
	}

	if err := l.Import(strings.NewReader("{ invalid json")); err == nil {
		t.Fatal("Import() of malformed JSON expected an error")
	}
	// State is left unchanged.
	if got := len(l.Expenses()); got != 1 {
		t.Errorf("expenses after failed import = %d, want 1", got)
	}
	if got := l.Expenses()[0].Description; got != "keep me" {
		t.Errorf("expense after failed import = %q, want untouched", got)
	}
}

func TestImport_DropsMalformedRecords(t *testing.T) {
	input := `{
  "participants": [
    {"id": "1", "name": "Test User"},
    {"id": "", "name": "no id"}
  ],
  "expenses": [
    {
      "id": "e1",
      "amount": 100,
      "currency": "PLN",
      "payer": "1",
      "beneficiaries": ["1"],
      "description": "well formed",
      "date": "2024-01-03T12:00:00Z"
    },
    {"id": "e2"},
    {
      "id": "e3",
      "amount": "not-a-number",
      "currency": "PLN",
      "payer": "1",
      "beneficiaries": ["1"],
      "date": "2024-01-03T12:00:00Z"
    },
    {
      "id": "e4",
      "amount": 50,
      "currency": "PLN",
      "payer": "1",
      "beneficiaries": ["1"],
      "date": "invalid-date"
    }
  ],
  "currencies": [],
  "payments": []
}`
	l, _ := newTestLedger("X")
	if err := l.Import(strings.NewReader(input)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	expenses := l.Expenses()
	if len(expenses) != 1 {
		t.Fatalf("got %d expenses, want exactly the well-formed one", len(expenses))
	}
	if expenses[0].ID != "e1" {
		t.Errorf("kept expense id = %q, want e1", expenses[0].ID)
	}
	participants := l.Participants()
	if len(participants) != 1 || participants[0].ID != "1" {
		t.Errorf("kept participants = %+v, want just id 1", participants)
	}
}

func TestImport_CoercesLenientValues(t *testing.T) {
	input := `{
  "participants": [{"id": "1", "name": "Test"}],
  "expenses": [
    {
      "id": "e1",
      "amount": "100.50",
      "currency": "PLN",
      "payer": "1",
      "beneficiaries": ["1"],
      "date": "2024-01-03"
    }
  ],
  "currencies": [],
  "payments": []
}`
	l, _ := newTestLedger("X")
	if err := l.Import(strings.NewReader(input)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	expenses := l.Expenses()
	if len(expenses) != 1 {
		t.Fatalf("got %d expenses, want 1", len(expenses))
	}
	if !expenses[0].Amount.Equal(dec("100.50")) {
		t.Errorf("coerced amount = %s, want 100.50", expenses[0].Amount)
	}
	// The date-only form is normalized to the canonical timestamp format.
	if got := expenses[0].Date.String(); !strings.Contains(got, "T") {
		t.Errorf("normalized date = %q, want canonical RFC3339", got)
	}

	// The currency table was absent from the document: the current one is kept.
	if got := len(l.Currencies()); got != 4 {
		t.Errorf("currencies after import without table = %d, want 4", got)
	}
}

func TestImport_ValidatesCurrencies(t *testing.T) {
	input := `{
  "participants": [],
  "expenses": [],
  "currencies": [
    {"code": "PLN", "symbol": "zł", "name": "Polski złoty", "exchangeRate": 1},
    {"code": "EUR", "symbol": "€", "name": "Euro", "exchangeRate": 4.55},
    {"code": "BAD", "symbol": "?", "name": "Too big", "exchangeRate": 5000},
    {"symbol": "?", "name": "No code", "exchangeRate": 2}
  ],
  "payments": []
}`
	l, _ := newTestLedger("X")
	if err := l.Import(strings.NewReader(input)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	codes := make([]string, 0)
	for _, c := range l.Currencies() {
		codes = append(codes, c.Code)
	}
	if len(codes) != 2 || codes[0] != "PLN" || codes[1] != "EUR" {
		t.Errorf("currencies after import = %v, want [PLN EUR]", codes)
	}
	if c, _ := l.Currency("EUR"); !c.Rate.Equal(dec("4.55")) {
		t.Errorf("EUR rate = %s, want 4.55", c.Rate)
	}
}

func TestImport_NotifiesAndInvalidates(t *testing.T) {
	l, ps := newTestLedger("A", "B")
	if _, err := l.AddExpense(dec("10"), "PLN", ps[0].ID, []string{ps[1].ID}, ""); err != nil {
		t.Fatal(err)
	}
	before := l.CalculateBalances()
	if len(before) != 2 {
		t.Fatal("unexpected balance count")
	}

	notified := false
	l.Subscribe(func() { notified = true })

	if err := l.Import(strings.NewReader(`{"participants":[{"id":"9","name":"Solo"}],"expenses":[],"currencies":[],"payments":[]}`)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !notified {
		t.Error("import must notify subscribers")
	}
	after := l.CalculateBalances()
	if len(after) != 1 || after[0].ParticipantID != "9" {
		t.Errorf("balances after import = %+v, want a single fresh participant", after)
	}
}
