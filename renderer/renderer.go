// Package renderer turns domain collections into markdown. The CLI
// commands print the result through a terminal markdown renderer, but
// the output here is plain markdown and pipes cleanly into files.
package renderer

import (
	"fmt"
	"strings"

	"github.com/avikale/stockdesk"
)

// Stocks renders the stock catalog as a markdown table.
func Stocks(stocks []stockdesk.Stock, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stocks (%d)\n\n", total)
	if len(stocks) == 0 {
		fmt.Fprintln(&b, "No stocks found.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Name | Exchange | Sector |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|")
	for _, s := range stocks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Symbol, s.Name, s.Exchange, s.Sector)
	}
	return b.String()
}

// Prices renders a stock's price history as a markdown table. The
// caller decides the order; the console and CLI both pass latest
// first.
func Prices(stock stockdesk.Stock, prices []stockdesk.StockPrice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price History: %s\n\n", stock.Symbol)
	fmt.Fprintf(&b, "%s, %s\n\n", stock.Name, stock.Exchange)
	if len(prices) == 0 {
		fmt.Fprintln(&b, "No prices recorded yet.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Recorded At | Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range prices {
		fmt.Fprintf(&b, "| %s | %s |\n", p.RecordedAt, stockdesk.FormatINR(p.Price))
	}
	return b.String()
}

// Holdings renders a portfolio's holdings as a markdown table, with
// per-row profit/loss and trend. Rows missing a price show N/A rather
// than a number.
func Holdings(p *stockdesk.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio: %s\n\n", p.Username)
	if len(p.Stocks) == 0 {
		fmt.Fprintln(&b, "No holdings yet.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Quantity | Avg Cost | Latest Price | P/L | Trend |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---:|")
	for _, h := range p.Stocks {
		pl := "N/A"
		if pct, ok := h.ProfitLoss(); ok {
			pl = pct.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			h.StockSymbol,
			quantity(h.Quantity),
			optionalINR(h.AverageCostPrice),
			optionalINR(h.LatestMarketPrice),
			pl,
			h.Trend(),
		)
	}
	fmt.Fprintf(&b, "\nTotal Holdings: %d stocks\n", len(p.Stocks))
	return b.String()
}

func optionalINR(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return stockdesk.FormatINR(*v)
}

// quantity drops trailing zeros so whole share counts read as
// integers.
func quantity(q float64) string {
	s := fmt.Sprintf("%.4f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
