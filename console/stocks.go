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

type stocksLoadedMsg struct {
	gen    int
	stocks []stockdesk.Stock
	count  int
	err    error
}

type stockDeletedMsg struct {
	gen int
	err error
}

// stocksPage lists all stocks. Besides the shared selection set it
// keeps a single focused row, used to open the price history and to
// pick the edit/delete target.
type stocksPage struct {
	client *api.Client
	log    *slog.Logger

	list  *list[stockdesk.Stock]
	count int
	spin  spinner.Model
}

func newStocksPage(client *api.Client, log *slog.Logger) *stocksPage {
	return &stocksPage{
		client: client,
		log:    log,
		list:   newList(func(s stockdesk.Stock) string { return s.ID }),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *stocksPage) title() string   { return "Stocks Management" }
func (p *stocksPage) capturing() bool { return false }

func (p *stocksPage) Init() tea.Cmd {
	return tea.Batch(p.spin.Tick, p.fetch())
}

func (p *stocksPage) fetch() tea.Cmd {
	gen := p.list.beginFetch()
	client := p.client
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			stocks, count, err := client.ListStocks(ctx)
			return stocksLoadedMsg{gen: gen, stocks: stocks, count: count, err: err}
		})
	}
}

func (p *stocksPage) confirmDelete() tea.Cmd {
	target, gen, ok := p.list.beginDelete()
	if !ok {
		return nil
	}
	client := p.client
	symbol := target.Symbol
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			return stockDeletedMsg{gen: gen, err: client.DeleteStock(ctx, symbol)}
		})
	}
}

func (p *stocksPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.list.phase == listLoading {
			var cmd tea.Cmd
			p.spin, cmd = p.spin.Update(msg)
			return p, cmd
		}
		return p, nil

	case stocksLoadedMsg:
		if p.list.resolveFetch(msg.gen, msg.stocks, msg.err) && msg.err == nil {
			p.count = msg.count
		}
		return p, nil

	case stockDeletedMsg:
		p.list.resolveDelete(msg.gen, msg.err)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *stocksPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	// confirmation prompt has its own key map
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
		p.list.dismissError()
	}

	if !p.list.ready() {
		return p, nil
	}

	switch msg.String() {
	case "up", "k":
		p.list.moveFocus(-1)
	case "down", "j":
		p.list.moveFocus(1)
	case " ":
		p.list.toggleSelected()
	case "a":
		p.list.toggleSelectAll()
	case "n":
		return p, navigate(RouteStockForm, payload{})
	case "e":
		if stock, ok := p.list.focused(); ok {
			return p, navigate(RouteStockForm, payload{Stock: &stock})
		}
	case "d":
		p.list.requestDelete()
	case "enter":
		if stock, ok := p.list.focused(); ok {
			return p, navigate(RoutePrices, payload{Stock: &stock})
		}
	}
	return p, nil
}

func (p *stocksPage) View(width int) string {
	switch p.list.phase {
	case listLoading:
		return p.spin.View() + " Loading stocks..."
	case listFailed:
		return banner("Failed to fetch stocks. Please try again later.", false) +
			hintStyle.Render("r retry • 1 dashboard")
	}

	var b strings.Builder
	b.WriteString(banner(p.list.errMsg, false))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("View and manage all stocks in the portfolio system (%d stocks)", p.count)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%s %s %s %s %s",
		selectAllMark(p.list.selectionState()),
		pad("Symbol", 10), pad("Name", 32), pad("Exchange", 8), pad("Sector", 28))
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(p.list.items) == 0 {
		b.WriteString(subtitleStyle.Render("No stocks found"))
		b.WriteString("\n")
	}
	for i, stock := range p.list.items {
		row := fmt.Sprintf("%s %s %s %s %s",
			checkMark(p.list.isSelected(stock)),
			pad(stock.Symbol, 10), pad(stock.Name, 32), pad(string(stock.Exchange), 8), pad(stock.Sector, 28))
		style := rowStyle
		if i == p.list.focus {
			style = focusedRowStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	if target := p.list.pendingDelete; target != nil {
		prompt := fmt.Sprintf("This will delete stock %s permanently. Want to continue?\n\n[y] Yes   [n] No", target.Symbol)
		if p.list.deleting {
			prompt = "Deleting " + target.Symbol + "..."
		}
		b.WriteString(modalStyle.Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter prices • n add • e edit • d delete • space select • a select all • r refresh"))
	return b.String()
}

func selectAllMark(s selection) string {
	switch s {
	case selectedAll:
		return "[x]"
	case selectedSome:
		return "[~]"
	}
	return "[ ]"
}

func checkMark(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}
