package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avikale/stockdesk/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	query string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio holdings" }
func (*portfolioCmd) Usage() string {
	return `stockdesk portfolio [-q <jsonpath>]

  Displays the holdings of the configured user's portfolio, with
  per-holding profit/loss and price trend.

Usage Examples:
# Render the holdings as a table.
$ stockdesk portfolio

# Print only the held symbols.
$ stockdesk portfolio -q '$.stocks[*].stock_symbol'
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to extract values instead of rendering the table")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, client, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := client.GetPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.query != "" {
		if err := printQuery(p, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Holdings(p))
	return subcommands.ExitSuccess
}
