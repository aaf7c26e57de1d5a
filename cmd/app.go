// Package cmd implements the CLI application to manage a shared-expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/SLASHLogin/splitex"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&joinCmd{}, "participants")
	c.Register(&renameCmd{}, "participants")
	c.Register(&leaveCmd{}, "participants")

	c.Register(&addCmd{}, "expenses")
	c.Register(&editCmd{}, "expenses")
	c.Register(&rmCmd{}, "expenses")
	c.Register(&payCmd{}, "expenses")

	c.Register(&balancesCmd{}, "reports")
	c.Register(&settleCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
	c.Register(&ratesCmd{}, "reports")

	c.Register(&exportCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&resetCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", defaultStateFile(), "Path to the ledger state file")
var netPayments = flag.Bool("net-payments", false, "Fold recorded payments into balances and settlement plans")

// defaultStateFile resolves the state file path, the SPLITEX_STATE
// environment variable overrides the built-in default.
func defaultStateFile() string {
	if p := os.Getenv("SPLITEX_STATE"); p != "" {
		return p
	}
	return "splitex.json"
}

// openLedger is the central function to open the ledger from the app state file.
func openLedger() (*splitex.Ledger, error) {
	opts := []splitex.Option{splitex.WithPersister(splitex.NewFileStore(*stateFile))}
	if *netPayments {
		opts = append(opts, splitex.WithPaymentNetting())
	}
	return splitex.NewLedger(opts...)
}

// resolveParticipant finds a participant by name or by id.
func resolveParticipant(l *splitex.Ledger, s string) (splitex.Participant, error) {
	for _, p := range l.Participants() {
		if p.ID == s || p.Name == s {
			return p, nil
		}
	}
	return splitex.Participant{}, fmt.Errorf("unknown participant %q", s)
}
