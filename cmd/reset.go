package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all expenses and payments" }
func (*resetCmd) Usage() string {
	return `spx reset

  Removes every recorded expense and payment, starting the group over.
  Participants and the currency table are kept.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Cleared all expenses and payments")
	return subcommands.ExitSuccess
}
