package console

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

type priceSavedMsg struct {
	gen int
	err error
}

// priceFormPage records a price point for a stock, or edits one when
// built with an existing price.
type priceFormPage struct {
	client *api.Client
	log    *slog.Logger
	stock  stockdesk.Stock

	editing *stockdesk.StockPrice
	form    *form
}

func newPriceFormPage(client *api.Client, log *slog.Logger, stock stockdesk.Stock, editing *stockdesk.StockPrice) *priceFormPage {
	f := newForm(
		newNumericField("price", "Price (₹)", "e.g. 2450.75"),
		newDateTimeField("recorded_at", "Recorded At"),
	)
	p := &priceFormPage{client: client, log: log, stock: stock, editing: editing, form: f}
	if editing != nil {
		f.setValue("price", strconv.FormatFloat(editing.Price, 'f', -1, 64))
		f.setValue("recorded_at", editing.RecordedAt.Picker())
	}
	return p
}

func (p *priceFormPage) title() string {
	if p.editing != nil {
		return "Edit Stock Price: " + p.stock.Symbol
	}
	return "Add Stock Price: " + p.stock.Symbol
}

func (p *priceFormPage) capturing() bool { return p.form.capturing() }
func (p *priceFormPage) Init() tea.Cmd   { return nil }

var (
	errInvalidPrice    = errors.New("please enter a valid price")
	errInvalidDateTime = errors.New("please enter a valid date and time")
)

// draft assembles the price from the current field values. Validation
// failures map to the exact banner copy the fields promise.
func (p *priceFormPage) draft() (stockdesk.StockPrice, error) {
	price, err := stockdesk.ParsePositiveAmount(p.form.value("price"))
	if err != nil {
		return stockdesk.StockPrice{}, errInvalidPrice
	}
	ts, err := stockdesk.ParseTimestamp(p.form.value("recorded_at"))
	if err != nil {
		return stockdesk.StockPrice{}, errInvalidDateTime
	}
	sp := stockdesk.StockPrice{StockID: p.stock.ID, Price: price, RecordedAt: ts}
	if p.editing != nil {
		sp.ID = p.editing.ID
	}
	return sp, sp.Validate()
}

func (p *priceFormPage) submit() tea.Cmd {
	sp, err := p.draft()
	if err != nil {
		p.form.failValidation(err.Error())
		return nil
	}

	gen := p.form.beginSubmit()
	client := p.client
	editing := p.editing != nil
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			var err error
			if editing {
				err = client.UpdatePrice(ctx, sp)
			} else {
				err = client.CreatePrice(ctx, sp)
			}
			return priceSavedMsg{gen: gen, err: err}
		})
	}
}

func (p *priceFormPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case priceSavedMsg:
		success := "Stock price added successfully! Redirecting to price history..."
		if p.editing != nil {
			success = "Stock price updated successfully! Redirecting to price history..."
		}
		if p.form.resolveSubmit(msg.gen, msg.err, success) && msg.err == nil {
			return p, successTimer(msg.gen)
		}
		return p, nil

	case successTimerMsg:
		if p.form.owns(msg) && p.form.succeeded() {
			return p, navigate(RoutePrices, payload{Stock: &p.stock})
		}
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && !p.form.submitting() && !p.form.succeeded() {
			return p, navigate(RoutePrices, payload{Stock: &p.stock})
		}
	}

	submit, cmd := p.form.update(msg)
	if submit {
		return p, p.submit()
	}
	return p, cmd
}

func (p *priceFormPage) View(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(p.stock.Name))
	b.WriteString("\n\n")
	b.WriteString(p.form.view())
	if !p.form.succeeded() {
		b.WriteString(hintStyle.Render("enter submit • tab next field • esc back"))
	}
	return b.String()
}
