package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/renderer"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	query string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "list the price history of a stock" }
func (*pricesCmd) Usage() string {
	return `stockdesk prices [-q <jsonpath>] <symbol>

  Lists every recorded price for a stock, latest first. The stock is
  addressed by its symbol.

Usage Examples:
# Render the history as a table.
$ stockdesk prices RELIANCE

# Print only the raw prices.
$ stockdesk prices -q '$[*].price' RELIANCE
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to extract values instead of rendering the table")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one stock symbol")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	_, _, client, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stock, err := findStock(ctx, client, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	prices, err := client.ListPrices(ctx, stock.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}
	stockdesk.SortPricesDesc(prices)

	if c.query != "" {
		if err := printQuery(prices, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Prices(stock, prices))
	return subcommands.ExitSuccess
}
