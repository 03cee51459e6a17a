package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct {
	add    string
	rename string
	to     string
	delete string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "list and manage accounts" }
func (*accountCmd) Usage() string {
	return `sw account [-add <name> | -rename <name> -to <name> | -delete <name>]

  Without flags, lists the accounts and their balances.
  Deleting an account also deletes its transactions and recurring
  transactions.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create an account with the given name.")
	f.StringVar(&c.rename, "rename", "", "Account to rename.")
	f.StringVar(&c.to, "to", "", "New name for -rename.")
	f.StringVar(&c.delete, "delete", "", "Delete the account with the given name.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.add != "":
		if acc := s.AddAccount(c.add); acc == nil {
			fmt.Fprintf(os.Stderr, "Account %q already exists.\n", c.add)
			return subcommands.ExitUsageError
		}
		fmt.Printf("Created account %q.\n", c.add)
		return SaveStore(s, db)

	case c.rename != "":
		if c.to == "" {
			fmt.Fprintln(os.Stderr, "Error: -rename requires -to.")
			return subcommands.ExitUsageError
		}
		acc := s.AccountByName(c.rename)
		if acc == nil {
			fmt.Fprintf(os.Stderr, "Account %q not found.\n", c.rename)
			return subcommands.ExitFailure
		}
		acc.Name = c.to
		s.UpdateAccount(*acc)
		fmt.Printf("Renamed account %q to %q.\n", c.rename, c.to)
		return SaveStore(s, db)

	case c.delete != "":
		acc := s.AccountByName(c.delete)
		if acc == nil {
			fmt.Fprintf(os.Stderr, "Account %q not found.\n", c.delete)
			return subcommands.ExitFailure
		}
		s.DeleteAccount(acc.ID)
		fmt.Printf("Deleted account %q and its transactions.\n", c.delete)
		return SaveStore(s, db)
	}

	accounts := s.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts. Create one with: sw account -add <name>")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts\n\n")
	fmt.Fprintf(&b, "| Account | Balance | Id |\n| --- | --- | --- |\n")
	for _, acc := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", acc.Name, s.AccountBalance(acc.ID), acc.ID)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
