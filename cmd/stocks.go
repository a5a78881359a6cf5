package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avikale/stockdesk/renderer"
)

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	query string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list all stocks" }
func (*stocksCmd) Usage() string {
	return `stockdesk stocks [-q <jsonpath>]

  Lists every stock known to the backend.

Usage Examples:
# Render the catalog as a table.
$ stockdesk stocks

# Print only the symbols.
$ stockdesk stocks -q '$[*].symbol'
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to extract values instead of rendering the table")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, client, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stocks, total, err := client.ListStocks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching stocks: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.query != "" {
		if err := printQuery(stocks, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Stocks(stocks, total))
	return subcommands.ExitSuccess
}
