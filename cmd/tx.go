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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	filterFlags
	delete   string
	expenses bool
}

// filterFlags are the transaction selection flags shared by 'tx' and 'bulk'.
type filterFlags struct {
	account  string
	category string
	from     string
	to       string
	min      string
	max      string
	query    string
}

func (ff *filterFlags) register(f *flag.FlagSet) {
	f.StringVar(&ff.account, "account", "", "Only transactions on this account.")
	f.StringVar(&ff.category, "category", "", "Only transactions with a split in this category.")
	f.StringVar(&ff.from, "from", "", "Only transactions on or after this date.")
	f.StringVar(&ff.to, "to", "", "Only transactions on or before this date.")
	f.StringVar(&ff.min, "min", "", "Only transactions of at least this amount.")
	f.StringVar(&ff.max, "max", "", "Only transactions of at most this amount.")
	f.StringVar(&ff.query, "q", "", "Only transactions whose categories, tags or notes contain this text.")
}

// filter builds the Filter the flags describe, resolving the account name.
func (ff *filterFlags) filter(s *spendwise.Store) (spendwise.Filter, error) {
	var f spendwise.Filter
	if ff.account != "" {
		acc := s.AccountByName(ff.account)
		if acc == nil {
			return f, fmt.Errorf("account %q not found", ff.account)
		}
		f.AccountID = acc.ID
	}
	f.Category = ff.category
	f.Query = ff.query
	if ff.from != "" {
		d, err := spendwise.ParseDate(ff.from)
		if err != nil {
			return f, fmt.Errorf("invalid -from: %w", err)
		}
		f.Dates.From = d
	}
	if ff.to != "" {
		d, err := spendwise.ParseDate(ff.to)
		if err != nil {
			return f, fmt.Errorf("invalid -to: %w", err)
		}
		f.Dates.To = d
	}
	if ff.min != "" {
		m, err := spendwise.ParseMoney(ff.min)
		if err != nil {
			return f, fmt.Errorf("invalid -min: %w", err)
		}
		f.MinAmount = &m
	}
	if ff.max != "" {
		m, err := spendwise.ParseMoney(ff.max)
		if err != nil {
			return f, fmt.Errorf("invalid -max: %w", err)
		}
		f.MaxAmount = &m
	}
	return f, nil
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list, filter and delete transactions" }
func (*txCmd) Usage() string {
	return `sw tx [filter flags] [-expenses] [-delete <id>]

  Lists transactions, newest first. All filter flags combine. With
  -expenses, also prints the per-category expense totals of the
  selection.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f)
	f.StringVar(&c.delete, "delete", "", "Delete the transaction with the given id.")
	f.BoolVar(&c.expenses, "expenses", false, "Also print expense totals by category.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if c.delete != "" {
		if s.Transaction(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Transaction %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteTransaction(c.delete)
		fmt.Printf("Deleted transaction %q.\n", c.delete)
		return SaveStore(s, db)
	}

	filter, err := c.filter(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	txs := s.FilterTransactions(filter)
	printMarkdown(renderer.Transactions(txs, accountNamer(s)))
	if c.expenses {
		printMarkdown(renderer.ExpenseByCategory(spendwise.ExpenseByCategory(txs)))
	}
	return subcommands.ExitSuccess
}

// accountNamer resolves account ids to names for rendering.
func accountNamer(s *spendwise.Store) func(string) string {
	return func(id string) string {
		if acc := s.Account(id); acc != nil {
			return acc.Name
		}
		return id
	}
}
