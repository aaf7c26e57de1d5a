package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type joinCmd struct{}

func (*joinCmd) Name() string     { return "join" }
func (*joinCmd) Synopsis() string { return "add a participant to the group" }
func (*joinCmd) Usage() string {
	return `spx join <name>

  Adds a new participant. The name is used in reports and to refer to the
  participant in other commands.

Usage Examples:
$ spx join Ewa

`
}

func (c *joinCmd) SetFlags(f *flag.FlagSet) {}

func (c *joinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one name")
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := l.AddParticipant(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added participant %q\n", p.Name)
	return subcommands.ExitSuccess
}

type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a participant" }
func (*renameCmd) Usage() string {
	return `spx rename <old-name> <new-name>

  Changes a participant's display name. Recorded expenses and payments keep
  pointing at the same person.

Usage Examples:
$ spx rename Ania Anna

`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an old and a new name")
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := resolveParticipant(l, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.RenameParticipant(p.ID, f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed %q to %q\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

type leaveCmd struct{}

func (*leaveCmd) Name() string     { return "leave" }
func (*leaveCmd) Synopsis() string { return "remove a participant from the group" }
func (*leaveCmd) Usage() string {
	return `spx leave <name>

  Removes a participant. Expenses that mention them stay recorded and keep
  showing the raw id in reports.

Usage Examples:
$ spx leave Daniel

`
}

func (c *leaveCmd) SetFlags(f *flag.FlagSet) {}

func (c *leaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one name")
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := resolveParticipant(l, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.RemoveParticipant(p.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed participant %q\n", p.Name)
	return subcommands.ExitSuccess
}
