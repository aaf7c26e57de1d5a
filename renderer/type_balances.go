package renderer

import (
	"github.com/SLASHLogin/splitex"
)

// Balances is a struct to represent the balance report data in json.
// Amounts are handled with the exact Money type so that they already
// carry their renderers (String, SignedString).
type Balances struct {

	// Date the report was computed on.
	Date splitex.Datetime `json:"date"`
	// TotalSpend is the sum of all expenses in the base currency.
	TotalSpend splitex.Money `json:"totalSpend"`
	// Rows is one line per participant.
	Rows []BalanceRow `json:"rows"`
}

// BalanceRow represents the standings of a single participant.
type BalanceRow struct {
	Name      string        `json:"name"`
	TotalPaid splitex.Money `json:"totalPaid"`
	TotalOwed splitex.Money `json:"totalOwed"`
	Net       splitex.Money `json:"net"`
}

// NewBalances creates a new Balances struct from the ledger's current state.
func NewBalances(l *splitex.Ledger) *Balances {
	b := &Balances{
		Date: splitex.Now(),
		Rows: make([]BalanceRow, 0),
	}

	total := splitex.M(0, splitex.BaseCurrency)
	for _, bal := range l.CalculateBalances() {
		b.Rows = append(b.Rows, BalanceRow{
			Name:      l.ParticipantName(bal.ParticipantID),
			TotalPaid: bal.TotalPaid.Round(2),
			TotalOwed: bal.TotalOwed.Round(2),
			Net:       bal.Net.Round(2),
		})
		total = total.Add(bal.TotalPaid)
	}
	b.TotalSpend = total.Round(2)
	return b
}

const balancesMarkdownTemplate = `# Balances on {{ .Date.DayString }}

Total Spend: **{{ .TotalSpend }}**
{{- if .Rows }}

| Participant | Paid | Owes | Net |
|:---|---:|---:|---:|
{{- range .Rows }}
| {{ .Name }} | {{ .TotalPaid }} | {{ .TotalOwed }} | {{ .Net.SignedString }} |
{{- end }}
{{- end }}
`

// RenderBalances renders the Balances struct to a markdown string.
func RenderBalances(b *Balances) string {
	return renderTemplate("balances", balancesMarkdownTemplate, b)
}
