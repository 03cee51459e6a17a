package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
	"github.com/spendwise/spendwise/renderer"
)

// upcomingLimit caps the upcoming-obligations preview; the config file can
// raise it.
var upcomingLimit = spendwise.DefaultUpcomingLimit

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display balances, net worth and upcoming obligations" }
func (*summaryCmd) Usage() string {
	return `sw summary [-d <date>]

  Displays the account balances, the net worth breakdown, the month's
  savings rate and the recurring transactions still due this month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", spendwise.Today().String(), "Date for the summary.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := spendwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	var b strings.Builder
	b.WriteString(renderer.Summary(spendwise.NewSummary(s, on)))
	b.WriteString("\n")
	b.WriteString(renderer.Upcoming(s.Upcoming(on, upcomingLimit), accountNamer(s)))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
