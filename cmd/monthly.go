package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise/renderer"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the income and expense trend by month" }
func (*monthlyCmd) Usage() string {
	return `sw monthly

  Displays income, expense and net savings for every month with recorded
  transactions, in chronological order.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	printMarkdown(renderer.MonthlySeries(s.MonthlySeries()))
	return subcommands.ExitSuccess
}
