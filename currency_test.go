package splitex

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateRate(t *testing.T) {
	testCases := []struct {
		name string
		rate string
		want bool
	}{
		{name: "zero is invalid", rate: "0", want: false},
		{name: "negative is invalid", rate: "-5", want: false},
		{name: "just above the cap is invalid", rate: "1000.01", want: false},
		{name: "the cap itself is valid", rate: "1000", want: true},
		{name: "smallest practical rate is valid", rate: "0.01", want: true},
		{name: "ordinary rate is valid", rate: "4.32", want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateRate(dec(tc.rate)); got != tc.want {
				t.Errorf("ValidateRate(%s) = %v, want %v", tc.rate, got, tc.want)
			}
		})
	}
}

func TestCurrencies_ToBase(t *testing.T) {
	c := NewCurrencies(DefaultCurrencies()...)

	got := c.ToBase(dec("100"), "EUR")
	if want := PLN(432); !got.Equal(want) {
		t.Errorf("ToBase(100, EUR) = %s, want %s", got.Amount(), want.Amount())
	}

	// Unknown code is a lenient fallback: the amount passes through unchanged.
	got = c.ToBase(dec("100"), "XXX")
	if want := PLN(100); !got.Equal(want) {
		t.Errorf("ToBase(100, XXX) = %s, want %s", got.Amount(), want.Amount())
	}
}

func TestCurrencies_Convert(t *testing.T) {
	c := NewCurrencies(DefaultCurrencies()...)

	testCases := []struct {
		name   string
		amount string
		from   string
		to     string
		want   string
	}{
		{name: "EUR to USD", amount: "100", from: "EUR", to: "USD", want: "109.37"},
		{name: "to base", amount: "100", from: "EUR", to: "PLN", want: "432"},
		{name: "identity", amount: "99.99", from: "PLN", to: "PLN", want: "99.99"},
		{name: "unknown target keeps base amount", amount: "10", from: "EUR", to: "XXX", want: "43.2"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Convert(dec(tc.amount), tc.from, tc.to)
			if !got.Equal(dec(tc.want)) {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestCurrencies_ConvertRoundTrip(t *testing.T) {
	c := NewCurrencies(DefaultCurrencies()...)

	// A conversion there and back again must agree within the 2-decimal
	// rounding tolerance while rates are unchanged.
	x := dec("250.75")
	there := c.Convert(x, "EUR", "USD")
	back := c.Convert(there, "USD", "EUR")
	if diff := back.Sub(x).Abs(); diff.GreaterThan(dec("0.01")) {
		t.Errorf("round trip EUR->USD->EUR of %s drifted to %s (diff %s)", x, back, diff)
	}
}

func TestCurrencies_UpdateRate(t *testing.T) {
	c := NewCurrencies(DefaultCurrencies()...)

	if err := c.UpdateRate("EUR", dec("4.5")); err != nil {
		t.Fatalf("UpdateRate(EUR, 4.5) error = %v", err)
	}
	if got, _ := c.Get("EUR"); !got.Rate.Equal(dec("4.5")) {
		t.Errorf("rate after update = %s, want 4.5", got.Rate)
	}

	if err := c.UpdateRate("EUR", dec("0")); err == nil {
		t.Error("UpdateRate(EUR, 0) expected an error")
	}
	if err := c.UpdateRate("EUR", dec("1000.01")); err == nil {
		t.Error("UpdateRate(EUR, 1000.01) expected an error")
	}
	if err := c.UpdateRate("PLN", dec("2")); err == nil {
		t.Error("UpdateRate(PLN, 2) expected an error: the base rate is fixed")
	}
	if err := c.UpdateRate("XXX", dec("2")); err == nil {
		t.Error("UpdateRate(XXX, 2) expected an error: unknown currency")
	}

	// Failed updates must leave the table untouched.
	if got, _ := c.Get("EUR"); !got.Rate.Equal(dec("4.5")) {
		t.Errorf("rate after rejected updates = %s, want 4.5", got.Rate)
	}
	if got, _ := c.Get("PLN"); !got.Rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("base rate = %s, want 1", got.Rate)
	}
}

func TestNewCurrencies_AlwaysHasBase(t *testing.T) {
	c := NewCurrencies(Currency{Code: "EUR", Rate: dec("4.32")})
	base, ok := c.Get(BaseCurrency)
	if !ok {
		t.Fatal("base currency missing from table")
	}
	if !base.Rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("base rate = %s, want 1", base.Rate)
	}

	// An imported base currency with a bogus rate is forced back to 1.
	c = NewCurrencies(Currency{Code: "PLN", Rate: dec("7")})
	base, _ = c.Get(BaseCurrency)
	if !base.Rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("base rate = %s, want 1", base.Rate)
	}
}
