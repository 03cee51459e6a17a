package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
	"github.com/spendwise/spendwise/renderer"
)

// debtCmd holds the flags for the 'debt' subcommand.
type debtCmd struct {
	add     string
	initial string
	balance string
	rate    float64
	update  string
	delete  string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "track debts and payoff progress" }
func (*debtCmd) Usage() string {
	return `sw debt [-add <name> -initial <n> [-balance <n>] [-rate <n>] | -update <id> -balance <n> | -delete <id>]

  Without flags, lists the debts. -update refreshes the current balance.
  A new debt's balance defaults to its initial amount.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a debt with the given name.")
	f.StringVar(&c.initial, "initial", "", "Initial amount, for -add.")
	f.StringVar(&c.balance, "balance", "", "Current balance, for -add and -update.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent, for -add.")
	f.StringVar(&c.update, "update", "", "Debt id to update.")
	f.StringVar(&c.delete, "delete", "", "Delete the debt with the given id.")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add != "":
		initial, err := spendwise.ParseMoney(c.initial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing initial amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		balance := initial
		if c.balance != "" {
			balance, err = spendwise.ParseMoney(c.balance)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		d := s.AddDebt(spendwise.Debt{
			Name:           c.add,
			InitialAmount:  initial,
			CurrentBalance: balance,
			InterestRate:   c.rate,
		})
		fmt.Printf("Created debt %q (%s).\n", d.Name, d.ID)
		return SaveStore(s, db)

	case c.update != "":
		d := s.Debt(c.update)
		if d == nil {
			fmt.Fprintf(os.Stderr, "Debt %q not found.\n", c.update)
			return subcommands.ExitFailure
		}
		balance, err := spendwise.ParseMoney(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
			return subcommands.ExitUsageError
		}
		d.CurrentBalance = balance
		s.UpdateDebt(*d)
		paid, pct := d.PaidDown()
		fmt.Printf("Updated %q to %s (paid down %s, %s).\n", d.Name, d.CurrentBalance, paid, pct)
		return SaveStore(s, db)

	case c.delete != "":
		if s.Debt(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Debt %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteDebt(c.delete)
		fmt.Printf("Deleted debt %q.\n", c.delete)
		return SaveStore(s, db)
	}

	printMarkdown(renderer.Debts(s.Debts()))
	return subcommands.ExitSuccess
}
