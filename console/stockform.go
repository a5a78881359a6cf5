package console

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

type stockSavedMsg struct {
	gen int
	err error
}

// stockFormPage creates a stock, or edits one when built with an
// existing stock. Both variants share the form controller; edit
// pre-populates the drafts and keeps the id for the update call.
type stockFormPage struct {
	client *api.Client
	log    *slog.Logger

	editing *stockdesk.Stock
	form    *form
}

func newStockFormPage(client *api.Client, log *slog.Logger, editing *stockdesk.Stock) *stockFormPage {
	exchanges := make([]string, 0, len(stockdesk.Exchanges()))
	for _, e := range stockdesk.Exchanges() {
		exchanges = append(exchanges, string(e))
	}

	f := newForm(
		newTextField("symbol", "Symbol", "e.g. RELIANCE", 10),
		newTextField("name", "Name", "e.g. Reliance Industries Ltd", 100),
		newSelectField("exchange", "Exchange", exchanges, -1),
		newSelectField("sector", "Sector", stockdesk.Sectors(), -1),
	)
	p := &stockFormPage{client: client, log: log, editing: editing, form: f}
	if editing != nil {
		f.setValue("symbol", editing.Symbol)
		f.setValue("name", editing.Name)
		f.setValue("exchange", string(editing.Exchange))
		f.setValue("sector", editing.Sector)
	}
	return p
}

func (p *stockFormPage) title() string {
	if p.editing != nil {
		return "Edit Stock"
	}
	return "Add New Stock"
}

func (p *stockFormPage) capturing() bool { return p.form.capturing() }
func (p *stockFormPage) Init() tea.Cmd   { return nil }

// draft assembles the stock from the current field values.
func (p *stockFormPage) draft() stockdesk.Stock {
	s := stockdesk.Stock{
		Symbol:   strings.ToUpper(strings.TrimSpace(p.form.value("symbol"))),
		Name:     strings.TrimSpace(p.form.value("name")),
		Exchange: stockdesk.Exchange(p.form.value("exchange")),
		Sector:   p.form.value("sector"),
	}
	if p.editing != nil {
		s.ID = p.editing.ID
	}
	return s
}

func (p *stockFormPage) submit() tea.Cmd {
	stock := p.draft()
	if err := stock.Validate(); err != nil {
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
				err = client.UpdateStock(ctx, stock)
			} else {
				err = client.CreateStock(ctx, stock)
			}
			return stockSavedMsg{gen: gen, err: err}
		})
	}
}

func (p *stockFormPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case stockSavedMsg:
		success := "Stock added successfully! Redirecting to stocks page..."
		if p.editing != nil {
			success = "Stock updated successfully! Redirecting to stocks page..."
		}
		if p.form.resolveSubmit(msg.gen, msg.err, success) && msg.err == nil {
			return p, successTimer(msg.gen)
		}
		return p, nil

	case successTimerMsg:
		if p.form.owns(msg) && p.form.succeeded() {
			return p, navigate(RouteStocks, payload{})
		}
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && !p.form.submitting() && !p.form.succeeded() {
			return p, navigate(RouteStocks, payload{})
		}
	}

	submit, cmd := p.form.update(msg)
	if submit {
		return p, p.submit()
	}
	return p, cmd
}

func (p *stockFormPage) View(width int) string {
	var b strings.Builder
	b.WriteString(p.form.view())
	if !p.form.succeeded() {
		b.WriteString(hintStyle.Render("enter submit • tab next field • ←/→ change selection • esc back"))
	}
	return b.String()
}
