package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

// orderCmd holds the flags for the 'order' subcommand.
type orderCmd struct {
	orderType string
	price     float64
	quantity  float64
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "place a buy or sell order" }
func (*orderCmd) Usage() string {
	return `stockdesk order -type <BUY|SELL> -price <price> -qty <quantity> <symbol>

  Places an order against the configured portfolio. The stock is
  addressed by its symbol; price and quantity must be greater than 0.

Usage Examples:
# Buy 10 shares at 2450.75 each.
$ stockdesk order -type BUY -price 2450.75 -qty 10 RELIANCE
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.orderType, "type", "", "Order side: BUY or SELL")
	f.Float64Var(&c.price, "price", 0, "Price per unit")
	f.Float64Var(&c.quantity, "qty", 0, "Number of units")
}

func (c *orderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	order := stockdesk.Order{
		StockID:      stock.ID,
		Type:         stockdesk.OrderType(strings.ToUpper(c.orderType)),
		PricePerUnit: c.price,
		Quantity:     c.quantity,
	}
	if err := order.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := client.PlaceOrder(ctx, order); err != nil {
		fmt.Fprintf(os.Stderr, "Error placing order: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Order placed: %s %s x%s at %s\n",
		order.Type, symbol, trimmed(order.Quantity), stockdesk.FormatINR(order.PricePerUnit))
	return subcommands.ExitSuccess
}

func trimmed(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// findStock resolves a symbol against the stock catalog.
func findStock(ctx context.Context, client *api.Client, symbol string) (stockdesk.Stock, error) {
	stocks, _, err := client.ListStocks(ctx)
	if err != nil {
		return stockdesk.Stock{}, fmt.Errorf("fetching stocks: %w", err)
	}
	for _, s := range stocks {
		if s.Symbol == symbol {
			return s, nil
		}
	}
	return stockdesk.Stock{}, fmt.Errorf("unknown stock symbol %q", symbol)
}
