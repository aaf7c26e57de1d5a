package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SLASHLogin/splitex"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	amount      string
	currency    string
	payer       string
	split       string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a shared expense" }
func (*addCmd) Usage() string {
	return `spx add -amount <amount> -by <payer> [-cur <code>] [-for <names>] [-desc <text>]

  Records an expense paid by one participant and split equally between the
  beneficiaries. Without -for, the expense is split between everyone.

Usage Examples:
# Anna paid 100 PLN for the whole group.
$ spx add -amount 100 -by Anna -desc "groceries"

# Bartosz paid 60 EUR for himself and Celina.
$ spx add -amount 60 -cur EUR -by Bartosz -for Bartosz,Celina -desc "museum"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount paid, in the expense currency.")
	f.StringVar(&c.currency, "cur", splitex.BaseCurrency, "Currency code of the amount.")
	f.StringVar(&c.payer, "by", "", "Participant who paid.")
	f.StringVar(&c.split, "for", "", "Comma-separated beneficiaries. Everyone by default.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	payer, err := resolveParticipant(l, c.payer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	beneficiaries, err := resolveSplit(l, c.split)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	e, err := l.AddExpense(amount, c.currency, payer.ID, beneficiaries, c.description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %s: %s %s paid by %s\n", e.ID, e.Amount, e.Currency, payer.Name)
	return subcommands.ExitSuccess
}

// resolveSplit turns a comma-separated list of names into participant ids.
// An empty list means everyone.
func resolveSplit(l *splitex.Ledger, split string) ([]string, error) {
	if split == "" {
		var ids []string
		for _, p := range l.Participants() {
			ids = append(ids, p.ID)
		}
		return ids, nil
	}
	var ids []string
	for _, name := range strings.Split(split, ",") {
		p, err := resolveParticipant(l, strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

type editCmd struct {
	amount      string
	currency    string
	payer       string
	split       string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a recorded expense" }
func (*editCmd) Usage() string {
	return `spx edit <expense-id> [-amount <amount>] [-cur <code>] [-by <payer>] [-for <names>] [-desc <text>]

  Updates only the fields given on the command line; everything else keeps
  its recorded value. The expense id and date never change.

Usage Examples:
$ spx edit 3f2a... -amount 120

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.currency, "cur", "", "New currency code.")
	f.StringVar(&c.payer, "by", "", "New payer.")
	f.StringVar(&c.split, "for", "", "New comma-separated beneficiaries.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one expense id")
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var update splitex.ExpenseUpdate
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
		update.Amount = &amount
	}
	if c.currency != "" {
		update.Currency = &c.currency
	}
	if c.payer != "" {
		p, err := resolveParticipant(l, c.payer)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		update.Payer = &p.ID
	}
	if c.split != "" {
		ids, err := resolveSplit(l, c.split)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		update.Beneficiaries = ids
	}
	if c.description != "" {
		update.Description = &c.description
	}

	if err := l.UpdateExpense(f.Arg(0), update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated expense %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type rmCmd struct {
	payment bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a recorded expense or payment" }
func (*rmCmd) Usage() string {
	return `spx rm [-payment] <id>

  Removes a recorded expense, or with -payment a recorded payment. Removing
  an unknown id is not an error.

Usage Examples:
$ spx rm 3f2a...

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.payment, "payment", false, "Remove a payment instead of an expense.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one id")
		return subcommands.ExitUsageError
	}
	l, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.payment {
		err = l.RemovePayment(f.Arg(0))
	} else {
		err = l.RemoveExpense(f.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
