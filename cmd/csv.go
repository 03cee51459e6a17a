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

// csvCmd holds the flags for the 'csv' subcommand.
type csvCmd struct {
	file string
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "preview a CSV file as a table" }
func (*csvCmd) Usage() string {
	return `sw csv -file <path>

  Parses a CSV file and prints it as a table, for eyeballing a bank
  statement before hand-entering its rows. Use "-" to read from stdin.
`
}

func (c *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to preview ('-' for stdin).")
}

func (c *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if c.file != "-" {
		var err error
		in, err = os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	preview, err := spendwise.ReadCSVPreview(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| %s |\n", strings.Join(preview.Header, " | "))
	seps := make([]string, len(preview.Header))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(seps, " | "))
	for _, row := range preview.Rows {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
