package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/avikale/stockdesk/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// shell completion; exits the process when invoked by the shell
	(&complete.Command{Sub: sub}).Complete(path.Base(os.Args[0]))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
