package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// splitsFlag accumulates repeated -split values.
type splitsFlag []string

func (s *splitsFlag) String() string { return strings.Join(*s, ",") }
func (s *splitsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	account  string
	txType   string
	category string
	amount   string
	date     string
	splits   splitsFlag
	tags     string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `sw add -account <name> (-category <name> -amount <n> | -split <cat>=<n> ...) [-type income|expense] [-date <date>] [-tags <a,b>] [-notes <text>]

  Records a transaction on an account. Use -category/-amount for a single
  category, or repeat -split to divide the amount across categories. The
  transaction amount is always the sum of its splits.

Usage Examples:
$ sw add -account Checking -category Groceries -amount 54.20
$ sw add -account Checking -split "Groceries=40" -split "Entertainment=15"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account name.")
	f.StringVar(&c.txType, "type", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.category, "category", "", "Category for a single-split transaction.")
	f.StringVar(&c.amount, "amount", "", "Amount for a single-split transaction.")
	f.StringVar(&c.date, "date", spendwise.Today().String(), "Transaction date.")
	f.Var(&c.splits, "split", "Category split as <category>=<amount>. Repeatable.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

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
	date, err := spendwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	splits, err := c.parseSplits()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx, err := s.AddTransaction(spendwise.Transaction{
		AccountID: acc.ID,
		Splits:    splits,
		Date:      date,
		Type:      txType,
		Tags:      spendwise.ParseTags(c.tags),
		Notes:     c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s (%s).\n", tx.Type, tx.TotalAmount, acc.Name, tx.ID)
	return SaveStore(s, db)
}

// parseSplits builds the split list from either the single
// -category/-amount pair or the repeated -split flags.
func (c *addCmd) parseSplits() ([]spendwise.Split, error) {
	if len(c.splits) == 0 {
		if c.category == "" || c.amount == "" {
			return nil, fmt.Errorf("either -category and -amount, or at least one -split, is required")
		}
		amount, err := spendwise.ParseMoney(c.amount)
		if err != nil {
			return nil, fmt.Errorf("invalid -amount %q: %w", c.amount, err)
		}
		return []spendwise.Split{{Category: c.category, Amount: amount}}, nil
	}
	if c.category != "" || c.amount != "" {
		return nil, fmt.Errorf("-category/-amount and -split are mutually exclusive")
	}
	var splits []spendwise.Split
	for _, raw := range c.splits {
		category, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -split %q: want <category>=<amount>", raw)
		}
		amount, err := spendwise.ParseMoney(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid -split amount %q: %w", value, err)
		}
		splits = append(splits, spendwise.Split{Category: strings.TrimSpace(category), Amount: amount})
	}
	return splits, nil
}
