package renderer

import (
	"github.com/SLASHLogin/splitex"
)

// Rates represents the currency table for rendering.
type Rates struct {
	Base string    `json:"base"`
	Rows []RateRow `json:"rows"`
}

// RateRow is a single currency and its exchange rate to the base.
type RateRow struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Rate   string `json:"rate"`
}

// NewRates creates a Rates view from the ledger's currency table.
func NewRates(l *splitex.Ledger) *Rates {
	r := &Rates{Base: splitex.BaseCurrency, Rows: make([]RateRow, 0)}
	for _, c := range l.Currencies() {
		r.Rows = append(r.Rows, RateRow{
			Code:   c.Code,
			Symbol: c.Symbol,
			Name:   c.Name,
			Rate:   c.Rate.String(),
		})
	}
	return r
}

const ratesMarkdownTemplate = `# Exchange Rates

Base currency: **{{ .Base }}**

| Code | Symbol | Name | Rate |
|:---|:---|:---|---:|
{{- range .Rows }}
| {{ .Code }} | {{ .Symbol }} | {{ .Name }} | {{ .Rate }} |
{{- end }}
`

// RenderRates renders the Rates struct to a markdown string.
func RenderRates(r *Rates) string {
	return renderTemplate("rates", ratesMarkdownTemplate, r)
}
