package splitex

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the fixed reference currency all internal computation
// normalizes to. Its exchange rate is defined as 1 and is never editable.
const BaseCurrency = "PLN"

// maxRate is the upper bound (inclusive) for a valid exchange rate.
var maxRate = decimal.NewFromInt(1000)

var (
	ErrInvalidRate     = errors.New("exchange rate must be greater than 0 and at most 1000")
	ErrBaseRateLocked  = errors.New("the base currency rate is fixed at 1")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Currency describes a known currency and its exchange rate to the base
// currency, expressed as units of base currency per 1 unit of this currency.
type Currency struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"exchangeRate"`
}

// DefaultCurrencies returns the starting currency table: the base currency
// plus a few common ones with static illustrative rates.
func DefaultCurrencies() []Currency {
	return []Currency{
		{Code: "PLN", Symbol: "zł", Name: "Polski złoty", Rate: decimal.NewFromInt(1)},
		{Code: "EUR", Symbol: "€", Name: "Euro", Rate: decimal.RequireFromString("4.32")},
		{Code: "USD", Symbol: "$", Name: "Dolar amerykański", Rate: decimal.RequireFromString("3.95")},
		{Code: "GBP", Symbol: "£", Name: "Funt brytyjski", Rate: decimal.RequireFromString("5.05")},
	}
}

// ValidateRate reports whether rate is a usable exchange rate: strictly
// positive and at most 1000.
func ValidateRate(rate decimal.Decimal) bool {
	return rate.IsPositive() && rate.LessThanOrEqual(maxRate)
}

// Currencies holds the working set of currencies and provides conversion
// to and between them. Order of insertion is preserved for display.
type Currencies struct {
	list  []Currency
	index map[string]int
}

// NewCurrencies creates a currency table from the given currencies.
// The base currency is always present with rate 1.
func NewCurrencies(currencies ...Currency) *Currencies {
	c := &Currencies{index: make(map[string]int)}
	for _, cur := range currencies {
		c.put(cur)
	}
	if !c.Has(BaseCurrency) {
		c.put(Currency{Code: BaseCurrency, Symbol: "zł", Name: "Polski złoty", Rate: decimal.NewFromInt(1)})
	}
	return c
}

func (c *Currencies) put(cur Currency) {
	if cur.Code == BaseCurrency {
		cur.Rate = decimal.NewFromInt(1)
	}
	if i, ok := c.index[cur.Code]; ok {
		c.list[i] = cur
		return
	}
	c.index[cur.Code] = len(c.list)
	c.list = append(c.list, cur)
}

// Has reports whether the currency code is known.
func (c *Currencies) Has(code string) bool {
	_, ok := c.index[code]
	return ok
}

// Get returns the currency for the given code.
func (c *Currencies) Get(code string) (Currency, bool) {
	i, ok := c.index[code]
	if !ok {
		return Currency{}, false
	}
	return c.list[i], true
}

// All returns a copy of the currency table in insertion order.
func (c *Currencies) All() []Currency {
	return slices.Clone(c.list)
}

// ToBase converts an amount from the given currency to the base currency by
// multiplying with its exchange rate. An unknown code is a lenient fallback:
// the amount is returned unchanged, not an error.
func (c *Currencies) ToBase(amount decimal.Decimal, code string) Money {
	cur, ok := c.Get(code)
	if !ok {
		return M(amount, BaseCurrency)
	}
	return M(amount.Mul(cur.Rate), BaseCurrency)
}

// Convert converts an amount between two currencies through the base
// currency, rounded to 2 decimal places. If the target code is unknown the
// base-converted amount is returned unchanged.
func (c *Currencies) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	base := c.ToBase(amount, from).Amount()
	target, ok := c.Get(to)
	if !ok {
		return base
	}
	return base.Div(target.Rate).Round(2)
}

// UpdateRate sets a new exchange rate for a currency. It rejects rates
// outside (0, 1000], unknown codes, and any attempt to change the base
// currency rate away from 1.
func (c *Currencies) UpdateRate(code string, rate decimal.Decimal) error {
	if code == BaseCurrency {
		return ErrBaseRateLocked
	}
	if !ValidateRate(rate) {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, rate)
	}
	i, ok := c.index[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	c.list[i].Rate = rate
	return nil
}
