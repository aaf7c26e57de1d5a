package renderer

import (
	"strings"

	"github.com/SLASHLogin/splitex"
)

// Log represents the activity log: recorded expenses and payments,
// optionally restricted to a date range.
type Log struct {
	From     splitex.Datetime `json:"from,omitzero"`
	To       splitex.Datetime `json:"to,omitzero"`
	Expenses []ExpenseRow     `json:"expenses"`
	Payments []PaymentRow     `json:"payments"`
}

// ExpenseRow is a single recorded expense.
type ExpenseRow struct {
	Date          splitex.Datetime `json:"date"`
	Description   string           `json:"description,omitempty"`
	Amount        splitex.Money    `json:"amount"`
	Payer         string           `json:"payer"`
	Beneficiaries string           `json:"beneficiaries"`
}

// PaymentRow is a single recorded reimbursement.
type PaymentRow struct {
	Date   splitex.Datetime `json:"date"`
	From   string           `json:"from"`
	To     string           `json:"to"`
	Amount splitex.Money    `json:"amount"`
}

// NewLog creates a Log from the ledger. A zero from or to leaves that
// side of the range unbounded.
func NewLog(l *splitex.Ledger, from, to splitex.Datetime) *Log {
	r := &Log{
		From:     from,
		To:       to,
		Expenses: make([]ExpenseRow, 0),
		Payments: make([]PaymentRow, 0),
	}

	in := func(d splitex.Datetime) bool {
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}

	for _, e := range l.Expenses() {
		if !in(e.Date) {
			continue
		}
		names := make([]string, 0, len(e.Beneficiaries))
		for _, id := range e.Beneficiaries {
			names = append(names, l.ParticipantName(id))
		}
		r.Expenses = append(r.Expenses, ExpenseRow{
			Date:          e.Date,
			Description:   e.Description,
			Amount:        splitex.M(e.Amount, e.Currency),
			Payer:         l.ParticipantName(e.Payer),
			Beneficiaries: strings.Join(names, ", "),
		})
	}
	for _, p := range l.Payments() {
		if !in(p.Date) {
			continue
		}
		r.Payments = append(r.Payments, PaymentRow{
			Date:   p.Date,
			From:   l.ParticipantName(p.From),
			To:     l.ParticipantName(p.To),
			Amount: splitex.M(p.Amount, p.Currency),
		})
	}
	return r
}

const logMarkdownTemplate = `# Activity Log
{{- if .Expenses }}

## Expenses

| Date | Description | Amount | Paid by | For |
|:---|:---|---:|:---|:---|
{{- range .Expenses }}
| {{ .Date.DayString }} | {{ .Description }} | {{ .Amount }} | {{ .Payer }} | {{ .Beneficiaries }} |
{{- end }}
{{- end }}
{{- if .Payments }}

## Payments

| Date | From | To | Amount |
|:---|:---|:---|---:|
{{- range .Payments }}
| {{ .Date.DayString }} | {{ .From }} | {{ .To }} | {{ .Amount }} |
{{- end }}
{{- end }}
{{- if and (not .Expenses) (not .Payments) }}

Nothing recorded yet.
{{- end }}
`

// RenderLog renders the Log struct to a markdown string.
func RenderLog(r *Log) string {
	return renderTemplate("log", logMarkdownTemplate, r)
}
