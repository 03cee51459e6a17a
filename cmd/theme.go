package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// themeCmd holds the flags for the 'theme' subcommand.
type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the display theme" }
func (*themeCmd) Usage() string {
	return `sw theme [light|dark]

  Without an argument, prints the current theme. The theme selects the
  terminal markdown style and round-trips through snapshots.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if f.NArg() == 0 {
		fmt.Println(s.Theme())
		return subcommands.ExitSuccess
	}

	theme := spendwise.Theme(f.Arg(0))
	if !spendwise.ValidTheme(theme) {
		fmt.Fprintf(os.Stderr, "Unknown theme %q: want light or dark.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	s.SetTheme(theme)
	fmt.Printf("Theme set to %s.\n", theme)
	return SaveStore(s, db)
}
