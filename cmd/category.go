package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct {
	add    string
	rename string
	to     string
	delete string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list and manage categories" }
func (*categoryCmd) Usage() string {
	return `sw category [-add <name> | -rename <name> -to <name> | -delete <name>]

  Without flags, lists the categories.
  Renaming a category updates every transaction, budget and recurring
  transaction that uses it. A category still in use cannot be deleted.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a category with the given name.")
	f.StringVar(&c.rename, "rename", "", "Category to rename.")
	f.StringVar(&c.to, "to", "", "New name for -rename.")
	f.StringVar(&c.delete, "delete", "", "Delete the category with the given name.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add != "":
		if !s.AddCategory(c.add) {
			fmt.Fprintf(os.Stderr, "Category %q already exists.\n", c.add)
			return subcommands.ExitUsageError
		}
		fmt.Printf("Created category %q.\n", c.add)
		return SaveStore(s, db)

	case c.rename != "":
		if c.to == "" {
			fmt.Fprintln(os.Stderr, "Error: -rename requires -to.")
			return subcommands.ExitUsageError
		}
		cat := s.CategoryByName(c.rename)
		if cat == nil {
			fmt.Fprintf(os.Stderr, "Category %q not found.\n", c.rename)
			return subcommands.ExitFailure
		}
		if err := s.RenameCategory(cat.ID, c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming category: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Renamed category %q to %q.\n", c.rename, c.to)
		return SaveStore(s, db)

	case c.delete != "":
		cat := s.CategoryByName(c.delete)
		if cat == nil {
			fmt.Fprintf(os.Stderr, "Category %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		if err := s.DeleteCategory(cat.ID); err != nil {
			if errors.Is(err, spendwise.ErrCategoryInUse) {
				fmt.Fprintf(os.Stderr, "Category %q is still used by transactions, budgets or recurring transactions.\n", c.delete)
			} else {
				fmt.Fprintf(os.Stderr, "Error deleting category: %v\n", err)
			}
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted category %q.\n", c.delete)
		return SaveStore(s, db)
	}

	fmt.Println(strings.Join(s.CategoryNames(), "\n"))
	return subcommands.ExitSuccess
}
