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

// investmentCmd holds the flags for the 'investment' subcommand.
type investmentCmd struct {
	add      string
	quantity float64
	price    string
	value    string
	update   string
	delete   string
}

func (*investmentCmd) Name() string     { return "investment" }
func (*investmentCmd) Synopsis() string { return "track investment holdings" }
func (*investmentCmd) Usage() string {
	return `sw investment [-add <name> -quantity <n> -price <n> -value <n> | -update <id> -value <n> | -delete <id>]

  Without flags, lists the investments and their unrealized gains.
  -update refreshes the current value of a holding.
`
}

func (c *investmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create an investment with the given name.")
	f.Float64Var(&c.quantity, "quantity", 0, "Quantity held, for -add.")
	f.StringVar(&c.price, "price", "", "Purchase price, for -add.")
	f.StringVar(&c.value, "value", "", "Current value, for -add and -update.")
	f.StringVar(&c.update, "update", "", "Investment id to revalue.")
	f.StringVar(&c.delete, "delete", "", "Delete the investment with the given id.")
}

func (c *investmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add != "":
		price, err := spendwise.ParseMoney(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
		value, err := spendwise.ParseMoney(c.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing value: %v\n", err)
			return subcommands.ExitUsageError
		}
		inv := s.AddInvestment(spendwise.Investment{
			Name:          c.add,
			Quantity:      c.quantity,
			PurchasePrice: price,
			CurrentValue:  value,
		})
		fmt.Printf("Created investment %q (%s).\n", inv.Name, inv.ID)
		return SaveStore(s, db)

	case c.update != "":
		inv := s.Investment(c.update)
		if inv == nil {
			fmt.Fprintf(os.Stderr, "Investment %q not found.\n", c.update)
			return subcommands.ExitFailure
		}
		value, err := spendwise.ParseMoney(c.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing value: %v\n", err)
			return subcommands.ExitUsageError
		}
		inv.CurrentValue = value
		s.UpdateInvestment(*inv)
		gain, pct := inv.Gain()
		fmt.Printf("Revalued %q to %s (%s, %s).\n", inv.Name, inv.CurrentValue, gain.SignedString(), pct.SignedString())
		return SaveStore(s, db)

	case c.delete != "":
		if s.Investment(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Investment %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteInvestment(c.delete)
		fmt.Printf("Deleted investment %q.\n", c.delete)
		return SaveStore(s, db)
	}

	printMarkdown(renderer.Investments(s.Investments()))
	return subcommands.ExitSuccess
}
