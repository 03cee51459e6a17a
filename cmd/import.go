package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all data with a JSON snapshot" }
func (*importCmd) Usage() string {
	return `sw import -file <path>

  Replaces the current data wholesale with the snapshot's content. A
  snapshot missing any required section is rejected and the current data
  is left untouched. Use "-" to read from stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Snapshot file to read ('-' for stdin).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if c.file != "-" {
		var err error
		in, err = os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening snapshot %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := s.Import(in); err != nil {
		if errors.Is(err, spendwise.ErrInvalidSnapshot) {
			fmt.Fprintf(os.Stderr, "Invalid snapshot: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions, %d accounts.\n", len(s.Transactions()), len(s.Accounts()))
	return SaveStore(s, db)
}
