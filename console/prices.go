package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

type pricesLoadedMsg struct {
	gen    int
	prices []stockdesk.StockPrice
	err    error
}

type priceDeletedMsg struct {
	gen int
	err error
}

// pricesPage lists the price history of one stock, latest first. It
// always carries the stock it belongs to; the router redirects to the
// stocks list when that payload is missing.
type pricesPage struct {
	client *api.Client
	log    *slog.Logger
	stock  stockdesk.Stock

	list *list[stockdesk.StockPrice]
	spin spinner.Model
}

func newPricesPage(client *api.Client, log *slog.Logger, stock stockdesk.Stock) *pricesPage {
	return &pricesPage{
		client: client,
		log:    log,
		stock:  stock,
		list:   newList(func(p stockdesk.StockPrice) string { return p.ID }),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *pricesPage) title() string   { return "Price History: " + p.stock.Symbol }
func (p *pricesPage) capturing() bool { return false }

func (p *pricesPage) Init() tea.Cmd {
	return tea.Batch(p.spin.Tick, p.fetch())
}

func (p *pricesPage) fetch() tea.Cmd {
	gen := p.list.beginFetch()
	client := p.client
	stockID := p.stock.ID
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			prices, err := client.ListPrices(ctx, stockID)
			if err == nil {
				stockdesk.SortPricesDesc(prices)
			}
			return pricesLoadedMsg{gen: gen, prices: prices, err: err}
		})
	}
}

func (p *pricesPage) confirmDelete() tea.Cmd {
	target, gen, ok := p.list.beginDelete()
	if !ok {
		return nil
	}
	client := p.client
	priceID := target.ID
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			return priceDeletedMsg{gen: gen, err: client.DeletePrice(ctx, priceID)}
		})
	}
}

func (p *pricesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.list.phase == listLoading {
			var cmd tea.Cmd
			p.spin, cmd = p.spin.Update(msg)
			return p, cmd
		}
		return p, nil

	case pricesLoadedMsg:
		p.list.resolveFetch(msg.gen, msg.prices, msg.err)
		return p, nil

	case priceDeletedMsg:
		p.list.resolveDelete(msg.gen, msg.err)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *pricesPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	if p.list.pendingDelete != nil {
		switch msg.String() {
		case "y":
			return p, p.confirmDelete()
		case "n", "esc":
			p.list.cancelDelete()
		}
		return p, nil
	}

	switch msg.String() {
	case "r":
		if p.list.phase != listLoading {
			return p, tea.Batch(p.spin.Tick, p.fetch())
		}
	case "esc":
		if p.list.errMsg != "" {
			p.list.dismissError()
			return p, nil
		}
		return p, navigate(RouteStocks, payload{})
	}

	if !p.list.ready() {
		return p, nil
	}

	switch msg.String() {
	case "up", "k":
		p.list.moveFocus(-1)
	case "down", "j":
		p.list.moveFocus(1)
	case "n":
		return p, navigate(RoutePriceForm, payload{Stock: &p.stock})
	case "e":
		if price, ok := p.list.focused(); ok {
			return p, navigate(RoutePriceForm, payload{Stock: &p.stock, Price: &price})
		}
	case "d":
		p.list.requestDelete()
	}
	return p, nil
}

func (p *pricesPage) View(width int) string {
	switch p.list.phase {
	case listLoading:
		return p.spin.View() + " Loading price history..."
	case listFailed:
		return banner("Failed to fetch stock prices. Please try again later.", false) +
			hintStyle.Render("r retry • esc back")
	}

	var b strings.Builder
	b.WriteString(banner(p.list.errMsg, false))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s • %s • %d price points", p.stock.Name, p.stock.Exchange, len(p.list.items))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%s %s", pad("Recorded At", 20), pad("Price", 14))
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(p.list.items) == 0 {
		b.WriteString(subtitleStyle.Render("No prices recorded for this stock yet"))
		b.WriteString("\n")
	}
	for i, price := range p.list.items {
		row := fmt.Sprintf("%s %s",
			pad(price.RecordedAt.String(), 20),
			pad(stockdesk.FormatINR(price.Price), 14))
		style := rowStyle
		if i == p.list.focus {
			style = focusedRowStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	if target := p.list.pendingDelete; target != nil {
		prompt := fmt.Sprintf("This will delete the price recorded at %s permanently. Want to continue?\n\n[y] Yes   [n] No", target.RecordedAt)
		if p.list.deleting {
			prompt = "Deleting price..."
		}
		b.WriteString(modalStyle.Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("n add • e edit • d delete • r refresh • esc back"))
	return b.String()
}
