package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
	"github.com/spendwise/spendwise/renderer"
)

// recurringCmd holds the flags for the 'recurring' subcommand.
type recurringCmd struct {
	add      bool
	account  string
	category string
	amount   string
	txType   string
	day      int
	tags     string
	notes    string
	post     string
	delete   string
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "manage and post recurring transactions" }
func (*recurringCmd) Usage() string {
	return `sw recurring [-add -account <name> -category <name> -amount <n> -day <1-31> | -post <id> | -delete <id>]

  Without flags, lists the recurring transactions. Posting records a real
  transaction dated today; a recurring transaction can be posted at most
  once per calendar month.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a recurring transaction.")
	f.StringVar(&c.account, "account", "", "Account name for -add.")
	f.StringVar(&c.category, "category", "", "Category for -add.")
	f.StringVar(&c.amount, "amount", "", "Amount for -add.")
	f.StringVar(&c.txType, "type", "expense", "Transaction type for -add: income or expense.")
	f.IntVar(&c.day, "day", 1, "Day of month (1-31) for -add.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags for -add.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes for -add.")
	f.StringVar(&c.post, "post", "", "Post the recurring transaction with the given id.")
	f.StringVar(&c.delete, "delete", "", "Delete the recurring transaction with the given id.")
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add:
		acc := s.AccountByName(c.account)
		if acc == nil {
			fmt.Fprintf(os.Stderr, "Account %q not found.\n", c.account)
			return subcommands.ExitUsageError
		}
		txType, err := spendwise.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		amount, err := spendwise.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		r, err := s.AddRecurringTransaction(spendwise.RecurringTransaction{
			AccountID:  acc.ID,
			Amount:     amount,
			Category:   c.category,
			Type:       txType,
			Frequency:  spendwise.Monthly,
			DayOfMonth: c.day,
			Tags:       spendwise.ParseTags(c.tags),
			Notes:      c.notes,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding recurring transaction: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recurring %s of %s on day %d created (%s).\n", r.Type, r.Amount, r.DayOfMonth, r.ID)
		return SaveStore(s, db)

	case c.post != "":
		tx, err := s.PostRecurring(c.post, spendwise.Today())
		if errors.Is(err, spendwise.ErrAlreadyPosted) {
			fmt.Fprintf(os.Stderr, "Recurring transaction %q was already posted this month.\n", c.post)
			return subcommands.ExitFailure
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error posting: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Posted %s of %s (%s).\n", tx.Type, tx.TotalAmount, tx.ID)
		return SaveStore(s, db)

	case c.delete != "":
		if s.RecurringTransaction(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Recurring transaction %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteRecurringTransaction(c.delete)
		fmt.Printf("Deleted recurring transaction %q.\n", c.delete)
		return SaveStore(s, db)
	}

	printMarkdown(renderer.Recurring(s.RecurringTransactions(), accountNamer(s)))
	return subcommands.ExitSuccess
}
