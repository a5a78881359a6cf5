package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

type portfolioLoadedMsg struct {
	gen       int
	portfolio *stockdesk.Portfolio
	err       error
}

// portfolioPage is the read-only holdings view for the configured
// user. Everything shown is derived server-side; the page only
// formats.
type portfolioPage struct {
	client *api.Client
	log    *slog.Logger

	phase     listPhase
	errMsg    string
	portfolio *stockdesk.Portfolio
	fetchedAt time.Time
	gen       int

	spin spinner.Model
}

func newPortfolioPage(client *api.Client, log *slog.Logger) *portfolioPage {
	return &portfolioPage{
		client: client,
		log:    log,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *portfolioPage) title() string   { return "Portfolio Holdings" }
func (p *portfolioPage) capturing() bool { return false }

func (p *portfolioPage) Init() tea.Cmd {
	return tea.Batch(p.spin.Tick, p.fetch())
}

func (p *portfolioPage) fetch() tea.Cmd {
	p.gen++
	p.phase = listLoading
	gen := p.gen
	client := p.client
	return func() tea.Msg {
		return withTimeout(func(ctx context.Context) tea.Msg {
			pf, err := client.GetPortfolio(ctx)
			return portfolioLoadedMsg{gen: gen, portfolio: pf, err: err}
		})
	}
}

func (p *portfolioPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.phase == listLoading {
			var cmd tea.Cmd
			p.spin, cmd = p.spin.Update(msg)
			return p, cmd
		}
		return p, nil

	case portfolioLoadedMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		if msg.err != nil {
			p.phase = listFailed
			p.errMsg = sentence(msg.err.Error())
			return p, nil
		}
		p.phase = listReady
		p.portfolio = msg.portfolio
		p.fetchedAt = time.Now()
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "r" && p.phase != listLoading {
			return p, tea.Batch(p.spin.Tick, p.fetch())
		}
	}
	return p, nil
}

// trendChip renders the movement indicator of a holding.
func trendChip(t stockdesk.Trend) string {
	switch t {
	case stockdesk.TrendUp:
		return chipUpStyle.Render("▲ up")
	case stockdesk.TrendDown:
		return chipDownStyle.Render("▼ down")
	}
	return chipFlatStyle.Render("– n/a")
}

// money formats an optional price, "N/A" when absent.
func money(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return stockdesk.FormatINR(*v)
}

func (p *portfolioPage) View(width int) string {
	switch p.phase {
	case listLoading:
		return p.spin.View() + " Loading portfolio..."
	case listFailed:
		return banner("Failed to fetch portfolio. Please try again later.", false) +
			hintStyle.Render("r retry • 1 dashboard")
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s's portfolio • last updated %s",
		p.portfolio.Username, p.fetchedAt.Format("15:04:05"))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%s %s %s %s %s %s",
		pad("Symbol", 10), pad("Quantity", 10), pad("Avg Cost", 14), pad("Latest Price", 14), pad("P/L", 10), "Trend")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(p.portfolio.Stocks) == 0 {
		b.WriteString(subtitleStyle.Render("No holdings in this portfolio yet"))
		b.WriteString("\n")
	}
	for _, h := range p.portfolio.Stocks {
		pl := "N/A"
		if pct, ok := h.ProfitLoss(); ok {
			pl = pct.SignedString()
		}
		row := fmt.Sprintf("%s %s %s %s %s %s",
			pad(h.StockSymbol, 10),
			pad(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", h.Quantity), "0"), "."), 10),
			pad(money(h.AverageCostPrice), 14),
			pad(money(h.LatestMarketPrice), 14),
			pad(pl, 10),
			trendChip(h.Trend()))
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Total Holdings: %d stocks", len(p.portfolio.Stocks))))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("r refresh • 1 dashboard • q quit"))
	return b.String()
}
