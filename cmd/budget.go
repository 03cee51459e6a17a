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

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	set    string
	amount string
	month  string
	delete string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set monthly category budgets and report on them" }
func (*budgetCmd) Usage() string {
	return `sw budget [-month <yyyy-mm>] [-set <category> -amount <n> | -delete <id>]

  Without -set or -delete, prints the budget report of the month (the
  current month by default). Setting a category that already has a budget
  for that month replaces it.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Category to budget.")
	f.StringVar(&c.amount, "amount", "", "Budget amount for -set.")
	f.StringVar(&c.month, "month", spendwise.ThisMonth().String(), "Month the budget applies to.")
	f.StringVar(&c.delete, "delete", "", "Delete the budget with the given id.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	month, err := spendwise.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	switch {
	case c.set != "":
		amount, err := spendwise.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		b := s.SetBudget(c.set, amount, month, "")
		fmt.Printf("Budget for %s in %s set to %s (%s).\n", b.Category, b.Month.Label(), b.Amount, b.ID)
		return SaveStore(s, db)

	case c.delete != "":
		if s.Budget(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Budget %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteBudget(c.delete)
		fmt.Printf("Deleted budget %q.\n", c.delete)
		return SaveStore(s, db)
	}

	printMarkdown(renderer.BudgetReport(month, s.BudgetReport(month)))
	return subcommands.ExitSuccess
}
