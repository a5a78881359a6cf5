package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/avikale/stockdesk/console"
)

type consoleCmd struct{}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "open the interactive admin console" }
func (*consoleCmd) Usage() string {
	return `stockdesk console

  Opens the full-screen terminal console: browse and manage stocks,
  record prices, place orders and review the portfolio.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {}

func (c *consoleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, log, client, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p := tea.NewProgram(console.New(client, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
