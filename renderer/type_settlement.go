package renderer

import (
	"github.com/SLASHLogin/splitex"
)

// Settlement represents a settlement plan ready for rendering.
type Settlement struct {
	Date splitex.Datetime `json:"date"`
	// Transfers is the ordered list of payments that settles all debts.
	Transfers []TransferRow `json:"transfers"`
	// TotalMoved is the sum of all planned transfers in the base currency.
	TotalMoved splitex.Money `json:"totalMoved"`
}

// TransferRow is a single planned payment between two participants.
type TransferRow struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Amount splitex.Money `json:"amount"`
}

// NewSettlement creates a Settlement from the ledger's current plan.
func NewSettlement(l *splitex.Ledger) *Settlement {
	s := &Settlement{
		Date:      splitex.Now(),
		Transfers: make([]TransferRow, 0),
	}
	total := splitex.M(0, splitex.BaseCurrency)
	for _, t := range l.CalculateTransfers() {
		s.Transfers = append(s.Transfers, TransferRow{
			From:   l.ParticipantName(t.From),
			To:     l.ParticipantName(t.To),
			Amount: t.Amount,
		})
		total = total.Add(t.Amount)
	}
	s.TotalMoved = total.Round(2)
	return s
}

const settlementMarkdownTemplate = `# Settlement Plan on {{ .Date.DayString }}
{{- if .Transfers }}

| From | To | Amount |
|:---|:---|---:|
{{- range .Transfers }}
| {{ .From }} | {{ .To }} | {{ .Amount }} |
{{- end }}
| **Total** | | **{{ .TotalMoved }}** |
{{- else }}

All settled, nothing to transfer.
{{- end }}
`

// RenderSettlement renders the Settlement struct to a markdown string.
func RenderSettlement(s *Settlement) string {
	return renderTemplate("settlement", settlementMarkdownTemplate, s)
}
