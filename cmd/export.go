package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a snapshot of all data to a JSON file" }
func (*exportCmd) Usage() string {
	return `sw export [-file <path>]

  Writes every collection (accounts, categories, transactions, budgets,
  recurring transactions, goals, investments, debts and the theme) to a
  single JSON snapshot. Without -file, a timestamped file is created in
  the current directory. Use "-" to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Snapshot file to write ('-' for stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if c.file == "-" {
		if err := s.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.file
	if filename == "" {
		filename = spendwise.ExportFilename(time.Now())
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := s.Export(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported snapshot to %s\n", filename)
	return subcommands.ExitSuccess
}
