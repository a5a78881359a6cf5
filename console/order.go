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

type orderStocksMsg struct {
	gen    int
	stocks []stockdesk.Stock
	err    error
}

type orderPlacedMsg struct {
	gen int
	err error
}

// orderPage places a buy or sell order. It first fetches the stock
// catalog for the stock dropdown, then hands over to the form. A
// successful order resets the form in place; there is no redirect,
// several orders can be placed in a row.
type orderPage struct {
	client *api.Client
	log    *slog.Logger

	phase  listPhase // loading/failed covers the stock fetch
	errMsg string
	stocks []stockdesk.Stock
	gen    int

	form *form
	spin spinner.Model
}

func newOrderPage(client *api.Client, log *slog.Logger) *orderPage {
	return &orderPage{
		client: client,
		log:    log,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *orderPage) title() string { return "Place Order" }

func (p *orderPage) capturing() bool {
	return p.form != nil && p.form.capturing()
}

func (p *orderPage) Init() tea.Cmd {
	return tea.Batch(p.spin.Tick, p.fetchStocks())
}

func (p *orderPage) fetchStocks() tea.Cmd {
	p.gen++
	p.phase = listLoading
	gen := p.gen
	client := p.client
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			stocks, _, err := client.ListStocks(ctx)
			return orderStocksMsg{gen: gen, stocks: stocks, err: err}
		})
	}
}

// stockOption is the dropdown label of a stock.
func stockOption(s stockdesk.Stock) string {
	return s.Symbol + " - " + s.Name
}

func (p *orderPage) buildForm() {
	options := make([]string, 0, len(p.stocks))
	for _, s := range p.stocks {
		options = append(options, stockOption(s))
	}
	p.form = newForm(
		newSelectField("stock", "Stock", options, -1),
		newSelectField("type", "Action", []string{string(stockdesk.Buy), string(stockdesk.Sell)}, -1),
		newNumericField("price", "Price per Unit (₹)", "e.g. 2450.75"),
		newNumericField("quantity", "Quantity", "e.g. 10"),
	)
}

// draft assembles the order from the current field values. The
// portfolio id is left empty; the client fills its configured default.
func (p *orderPage) draft() stockdesk.Order {
	var stockID string
	chosen := p.form.value("stock")
	for _, s := range p.stocks {
		if stockOption(s) == chosen {
			stockID = s.ID
			break
		}
	}
	price, _ := stockdesk.ParsePositiveAmount(p.form.value("price"))
	qty, _ := stockdesk.ParsePositiveAmount(p.form.value("quantity"))
	return stockdesk.Order{
		StockID:      stockID,
		Type:         stockdesk.OrderType(p.form.value("type")),
		PricePerUnit: price,
		Quantity:     qty,
	}
}

func (p *orderPage) submit() tea.Cmd {
	order := p.draft()
	if err := order.Validate(); err != nil {
		p.form.failValidation(err.Error())
		return nil
	}

	gen := p.form.beginSubmit()
	client := p.client
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			return orderPlacedMsg{gen: gen, err: client.PlaceOrder(ctx, order)}
		})
	}
}

func (p *orderPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.phase == listLoading {
			var cmd tea.Cmd
			p.spin, cmd = p.spin.Update(msg)
			return p, cmd
		}
		return p, nil

	case orderStocksMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		if msg.err != nil {
			p.phase = listFailed
			p.errMsg = sentence(msg.err.Error())
			return p, nil
		}
		p.phase = listReady
		p.stocks = msg.stocks
		p.buildForm()
		return p, nil

	case orderPlacedMsg:
		if p.form.resolveSubmit(msg.gen, msg.err, "Order placed successfully! Your portfolio has been updated.") && msg.err == nil {
			return p, successTimer(msg.gen)
		}
		return p, nil

	case successTimerMsg:
		// the success banner clears and the form resets for the next order
		if p.form != nil && p.form.owns(msg) && p.form.succeeded() {
			p.buildForm()
		}
		return p, nil

	case tea.KeyMsg:
		if p.phase == listFailed && msg.String() == "r" {
			return p, tea.Batch(p.spin.Tick, p.fetchStocks())
		}
	}

	if p.form == nil {
		return p, nil
	}
	submit, cmd := p.form.update(msg)
	if submit {
		return p, p.submit()
	}
	return p, cmd
}

func (p *orderPage) View(width int) string {
	switch p.phase {
	case listLoading:
		return p.spin.View() + " Loading stocks..."
	case listFailed:
		return banner("Failed to load stocks. Please try again later.", false) +
			hintStyle.Render("r retry • 1 dashboard")
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Buy or sell stocks for your portfolio (%d stocks available)", len(p.stocks))))
	b.WriteString("\n\n")
	b.WriteString(p.form.view())
	b.WriteString(hintStyle.Render("enter place order • tab next field • ←/→ change selection"))
	return b.String()
}
