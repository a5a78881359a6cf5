package console

import (
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
)

func typeRunes(f *form, s string) {
	for _, r := range s {
		f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormNumericFieldFiltersInput(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	typeRunes(f, "12a.5.x0")
	if got := f.value("price"); got != "12.50" {
		t.Errorf("draft = %q, want %q", got, "12.50")
	}
}

func TestFormTextFieldKeepsInput(t *testing.T) {
	f := newForm(newTextField("name", "Name", "", 100))
	typeRunes(f, "Reliance Industries")
	if got := f.value("name"); got != "Reliance Industries" {
		t.Errorf("draft = %q", got)
	}
}

func TestFormSelectCycling(t *testing.T) {
	f := newForm(newSelectField("exchange", "Exchange", []string{"NSE", "BSE"}, -1))
	if got := f.value("exchange"); got != "" {
		t.Errorf("initial value = %q, want empty", got)
	}
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	if got := f.value("exchange"); got != "NSE" {
		t.Errorf("after right = %q, want NSE", got)
	}
	// cycling wraps between real options, never back to the empty choice
	f.update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := f.value("exchange"); got != "BSE" {
		t.Errorf("after left wrap = %q, want BSE", got)
	}
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	if got := f.value("exchange"); got != "NSE" {
		t.Errorf("after right wrap = %q, want NSE", got)
	}
}

func TestFormEnterRequestsSubmit(t *testing.T) {
	f := newForm(newTextField("name", "Name", "", 100))
	submit, _ := f.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !submit {
		t.Error("enter did not request submission")
	}
}

func TestFormValidationFailureStaysEditing(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	f.failValidation("please enter a valid price")

	if f.phase != formEditing {
		t.Errorf("phase = %v, want editing", f.phase)
	}
	if f.errMsg != "Please enter a valid price" {
		t.Errorf("errMsg = %q", f.errMsg)
	}

	// the banner clears on the next keystroke
	typeRunes(f, "5")
	if f.errMsg != "" {
		t.Errorf("errMsg after keystroke = %q, want cleared", f.errMsg)
	}
}

func TestFormSubmissionLifecycle(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	typeRunes(f, "100")

	gen := f.beginSubmit()
	if !f.submitting() {
		t.Fatal("not submitting after beginSubmit")
	}

	// input is ignored while the call is in flight
	typeRunes(f, "9")
	if got := f.value("price"); got != "100" {
		t.Errorf("draft changed while submitting: %q", got)
	}

	if !f.resolveSubmit(gen, nil, "Stock added successfully!") {
		t.Fatal("current-generation submit was dropped")
	}
	if !f.succeeded() {
		t.Error("not succeeded after successful resolve")
	}
	if f.successMsg != "Stock added successfully!" {
		t.Errorf("successMsg = %q", f.successMsg)
	}
}

func TestFormSubmissionFailureKeepsDrafts(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	typeRunes(f, "100")

	gen := f.beginSubmit()
	f.resolveSubmit(gen, errors.New("failed to add stock"), "")

	if f.phase != formFailed {
		t.Errorf("phase = %v, want failed", f.phase)
	}
	if f.errMsg != "Failed to add stock" {
		t.Errorf("errMsg = %q", f.errMsg)
	}
	if got := f.value("price"); got != "100" {
		t.Errorf("draft = %q, want retained 100", got)
	}

	// editing resumes on the next keystroke
	typeRunes(f, "0")
	if f.phase != formEditing {
		t.Errorf("phase = %v, want editing", f.phase)
	}
	if got := f.value("price"); got != "1000" {
		t.Errorf("draft = %q", got)
	}
}

func TestFormStaleSubmitDropped(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	stale := f.beginSubmit()
	fresh := f.beginSubmit()

	if f.resolveSubmit(stale, nil, "done") {
		t.Error("stale submit was applied")
	}
	if f.succeeded() {
		t.Error("form succeeded from a stale response")
	}
	if !f.resolveSubmit(fresh, nil, "done") {
		t.Error("fresh submit was dropped")
	}
}

func TestFormSuccessTimerOwnership(t *testing.T) {
	f := newForm(newNumericField("price", "Price", ""))
	gen := f.beginSubmit()
	f.resolveSubmit(gen, nil, "done")

	if !f.owns(successTimerMsg{gen: gen}) {
		t.Error("current timer not owned")
	}
	if f.owns(successTimerMsg{gen: gen - 1}) {
		t.Error("stale timer owned")
	}
}

func TestStockFormRejectsInvalidDraft(t *testing.T) {
	p := newStockFormPage(nil, slog.New(slog.DiscardHandler), nil)

	cmd := p.submit()
	if cmd != nil {
		t.Fatal("invalid draft produced a backend call")
	}
	if p.form.errMsg != "Please enter a stock symbol" {
		t.Errorf("errMsg = %q", p.form.errMsg)
	}
	if p.form.phase != formEditing {
		t.Errorf("phase = %v, want editing", p.form.phase)
	}
}

func TestStockFormEditPrepopulates(t *testing.T) {
	stock := &stockdesk.Stock{
		ID: "a", Symbol: "TCS", Name: "Tata Consultancy Services",
		Exchange: stockdesk.NSE, Sector: "Information Technology",
	}
	p := newStockFormPage(nil, slog.New(slog.DiscardHandler), stock)

	if got := p.form.value("symbol"); got != "TCS" {
		t.Errorf("symbol = %q", got)
	}
	if got := p.form.value("exchange"); got != "NSE" {
		t.Errorf("exchange = %q", got)
	}
	if got := p.form.value("sector"); got != "Information Technology" {
		t.Errorf("sector = %q", got)
	}
	draft := p.draft()
	if draft.ID != "a" {
		t.Errorf("draft.ID = %q, want the edited stock's id", draft.ID)
	}
}

func TestPriceFormRejectsZeroPrice(t *testing.T) {
	stock := stockdesk.Stock{ID: "a", Symbol: "TCS"}
	p := newPriceFormPage(nil, slog.New(slog.DiscardHandler), stock, nil)
	p.form.setValue("price", "0")
	p.form.setValue("recorded_at", "2025-08-29T14:51")

	cmd := p.submit()
	if cmd != nil {
		t.Fatal("zero price produced a backend call")
	}
	if p.form.errMsg != "Please enter a valid price" {
		t.Errorf("errMsg = %q", p.form.errMsg)
	}
}

func TestPriceFormRejectsBadTimestamp(t *testing.T) {
	stock := stockdesk.Stock{ID: "a", Symbol: "TCS"}
	p := newPriceFormPage(nil, slog.New(slog.DiscardHandler), stock, nil)
	p.form.setValue("price", "2450.75")
	p.form.setValue("recorded_at", "yesterday")

	if cmd := p.submit(); cmd != nil {
		t.Fatal("bad timestamp produced a backend call")
	}
	if p.form.errMsg != "Please enter a valid date and time" {
		t.Errorf("errMsg = %q", p.form.errMsg)
	}
}

func TestOrderFormRejectsMissingStock(t *testing.T) {
	p := newOrderPage(nil, slog.New(slog.DiscardHandler))
	p.stocks = []stockdesk.Stock{{ID: "a", Symbol: "TCS", Name: "Tata Consultancy Services"}}
	p.buildForm()
	p.form.setValue("price", "100")
	p.form.setValue("quantity", "10")

	if cmd := p.submit(); cmd != nil {
		t.Fatal("missing stock produced a backend call")
	}
	if p.form.errMsg != "Please select a stock" {
		t.Errorf("errMsg = %q", p.form.errMsg)
	}
}

func TestOrderDraftResolvesStockID(t *testing.T) {
	p := newOrderPage(nil, slog.New(slog.DiscardHandler))
	p.stocks = []stockdesk.Stock{
		{ID: "a", Symbol: "TCS", Name: "Tata Consultancy Services"},
		{ID: "b", Symbol: "INFY", Name: "Infosys"},
	}
	p.buildForm()
	p.form.setValue("stock", "INFY - Infosys")
	p.form.setValue("type", "SELL")
	p.form.setValue("price", "1500.50")
	p.form.setValue("quantity", "3")

	order := p.draft()
	if order.StockID != "b" {
		t.Errorf("StockID = %q, want b", order.StockID)
	}
	if order.Type != stockdesk.Sell {
		t.Errorf("Type = %q", order.Type)
	}
	if order.PricePerUnit != 1500.50 || order.Quantity != 3 {
		t.Errorf("amounts = %v %v", order.PricePerUnit, order.Quantity)
	}
	if err := order.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSentence(t *testing.T) {
	cases := []struct{ in, want string }{
		{"please enter a valid price", "Please enter a valid price"},
		{"HTTP error: status 500", "HTTP error: status 500"},
		{"", ""},
	}
	for _, c := range cases {
		if got := sentence(c.in); got != c.want {
			t.Errorf("sentence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
