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

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	add    string
	target string
	by     string
	save   string
	amount string
	delete string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "track savings goals" }
func (*goalCmd) Usage() string {
	return `sw goal [-add <name> -target <n> [-by <date>] | -save <id> -amount <n> | -delete <id>]

  Without flags, lists the goals and their progress. -save adds to the
  amount already saved toward a goal.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a goal with the given name.")
	f.StringVar(&c.target, "target", "", "Target amount for -add.")
	f.StringVar(&c.by, "by", "", "Optional target date for -add.")
	f.StringVar(&c.save, "save", "", "Goal id to save toward.")
	f.StringVar(&c.amount, "amount", "", "Amount to add for -save.")
	f.StringVar(&c.delete, "delete", "", "Delete the goal with the given id.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add != "":
		target, err := spendwise.ParseMoney(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
			return subcommands.ExitUsageError
		}
		goal := spendwise.Goal{Name: c.add, TargetAmount: target}
		if c.by != "" {
			by, err := spendwise.ParseDate(c.by)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
				return subcommands.ExitUsageError
			}
			goal.TargetDate = &by
		}
		g := s.AddGoal(goal)
		fmt.Printf("Created goal %q (%s).\n", g.Name, g.ID)
		return SaveStore(s, db)

	case c.save != "":
		g := s.Goal(c.save)
		if g == nil {
			fmt.Fprintf(os.Stderr, "Goal %q not found.\n", c.save)
			return subcommands.ExitFailure
		}
		amount, err := spendwise.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		s.UpdateGoal(*g)
		progress, _ := g.Progress()
		fmt.Printf("Saved %s toward %q, now at %s.\n", amount, g.Name, progress)
		return SaveStore(s, db)

	case c.delete != "":
		if s.Goal(c.delete) == nil {
			fmt.Fprintf(os.Stderr, "Goal %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteGoal(c.delete)
		fmt.Printf("Deleted goal %q.\n", c.delete)
		return SaveStore(s, db)
	}

	printMarkdown(renderer.Goals(s.Goals()))
	return subcommands.ExitSuccess
}
