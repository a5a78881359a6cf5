package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardPage is pure chrome: a static landing screen.
type dashboardPage struct{}

func newDashboardPage() *dashboardPage { return &dashboardPage{} }

func (p *dashboardPage) Init() tea.Cmd                  { return nil }
func (p *dashboardPage) Update(tea.Msg) (page, tea.Cmd) { return p, nil }
func (p *dashboardPage) title() string                  { return "Dashboard" }
func (p *dashboardPage) capturing() bool                { return false }

var dashboardCardStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	Padding(0, 2).
	MarginRight(2)

func (p *dashboardPage) View(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Welcome to the Portfolio Admin Dashboard"))
	b.WriteString("\n\n")

	cards := []struct{ label, value string }{
		{"Total Stocks", "150+"},
		{"Active Portfolios", "25"},
		{"Registered Users", "1,250"},
		{"Total Value", "$2.5M"},
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, dashboardCardStyle.Render(c.label+"\n"+c.value))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Quick Actions"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("• View and manage stocks\n• Monitor portfolio performance\n• Place buy and sell orders\n• Record stock prices"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("2 stocks • 3 place order • 4 portfolios • q quit"))
	return b.String()
}
