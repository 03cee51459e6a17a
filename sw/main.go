package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/spendwise/spendwise/cmd"
)

func main() {
	// Shell completion. Complete() exits early when invoked by the shell.
	sub := make(map[string]*complete.Command, len(cmd.CommandNames()))
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("sw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
