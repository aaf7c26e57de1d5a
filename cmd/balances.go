package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SLASHLogin/splitex/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show each participant's current standing" }
func (*balancesCmd) Usage() string {
	return `spx balances

  Shows, for every participant, what they paid, what they owe and the
  resulting net balance, all in the base currency.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderBalances(renderer.NewBalances(l)))
	return subcommands.ExitSuccess
}
