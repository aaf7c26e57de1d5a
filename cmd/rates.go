package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SLASHLogin/splitex/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type ratesCmd struct {
	set string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or update the currency exchange rates" }
func (*ratesCmd) Usage() string {
	return `spx rates [-set <CODE>=<rate>]

  Without flags, prints the currency table. With -set, updates one
  exchange rate; the base currency rate cannot change.

Usage Examples:
$ spx rates
$ spx rates -set EUR=4.55

`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Update a rate, as CODE=rate.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		code, value, found := strings.Cut(c.set, "=")
		if !found {
			fmt.Fprintf(os.Stderr, "Error: -set expects CODE=rate, got %q\n", c.set)
			return subcommands.ExitUsageError
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid rate %q: %v\n", value, err)
			return subcommands.ExitUsageError
		}
		if err := l.UpdateRate(strings.ToUpper(strings.TrimSpace(code)), rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RenderRates(renderer.NewRates(l)))
	return subcommands.ExitSuccess
}
