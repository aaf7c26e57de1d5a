package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SLASHLogin/splitex/renderer"
	"github.com/google/subcommands"
)

type settleCmd struct{}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "print the minimal transfer plan that settles all debts" }
func (*settleCmd) Usage() string {
	return `spx settle

  Computes who should pay whom, and how much, so that everyone's balance
  returns to zero with as few transfers as possible. Nothing is recorded;
  use 'spx pay' once a transfer actually happened.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSettlement(renderer.NewSettlement(l)))
	return subcommands.ExitSuccess
}
