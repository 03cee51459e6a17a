package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// clearCmd holds the flags for the 'clear' subcommand.
type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all data and reseed the default categories" }
func (*clearCmd) Usage() string {
	return `sw clear [-force]

  Deletes every account, transaction, budget, recurring transaction,
  goal, investment and debt, and reseeds the default categories. Asks
  for confirmation unless -force is given.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Skip the confirmation prompt.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("This deletes ALL data. Type 'yes' to continue: ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	s.Clear()
	if pruned, err := spendwise.PruneKeys(db); err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else if len(pruned) > 0 {
		fmt.Printf("Pruned stale keys: %s.\n", strings.Join(pruned, ", "))
	}
	fmt.Println("All data cleared.")
	return SaveStore(s, db)
}
