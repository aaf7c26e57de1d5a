package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SLASHLogin/splitex"
	"github.com/SLASHLogin/splitex/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	start string
	end   string
}

func (*logCmd) Name() string { return "log" }
func (*logCmd) Synopsis() string {
	return "display a chronological log of recorded expenses and payments"
}
func (*logCmd) Usage() string {
	return `spx log [-s <start_date>] [-d <end_date>]

  Lists the recorded expenses and payments. Dates accept the full
  timestamp form or a bare day like 2024-01-03.

Usage Examples:
# Everything recorded in January.
$ spx log -s 2024-01-01 -d 2024-01-31

`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date for the log. Unbounded by default.")
	f.StringVar(&c.end, "d", "", "The end date for the log. Unbounded by default.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to splitex.Datetime
	var err error
	if c.start != "" {
		if from, err = splitex.ParseDatetime(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if to, err = splitex.ParseDatetime(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderLog(renderer.NewLog(l, from, to)))
	return subcommands.ExitSuccess
}
