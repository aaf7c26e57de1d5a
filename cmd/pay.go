package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SLASHLogin/splitex"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type payCmd struct {
	from     string
	to       string
	amount   string
	currency string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment between two participants" }
func (*payCmd) Usage() string {
	return `spx pay -from <name> -to <name> -amount <amount> [-cur <code>]

  Records that a participant handed money to another, typically to execute
  a transfer from the settlement plan. Payments are informational unless
  the ledger is opened with -net-payments.

Usage Examples:
$ spx pay -from Bartosz -to Anna -amount 25

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Participant who paid.")
	f.StringVar(&c.to, "to", "", "Participant who received the money.")
	f.StringVar(&c.amount, "amount", "", "Amount transferred.")
	f.StringVar(&c.currency, "cur", splitex.BaseCurrency, "Currency code of the amount.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	from, err := resolveParticipant(l, c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	to, err := resolveParticipant(l, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := l.RegisterPayment(from.ID, to.ID, amount, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded payment %s: %s %s from %s to %s\n", p.ID, p.Amount, p.Currency, from.Name, to.Name)
	return subcommands.ExitSuccess
}
