package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	menuActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)

	rowStyle = lipgloss.NewStyle()

	focusedRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25"))

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("124")).
				Padding(0, 1).
				MarginBottom(1)

	successBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("28")).
				Padding(0, 1).
				MarginBottom(1)

	modalStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(1, 2).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("33"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	chipUpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	chipDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	chipFlatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menu is the navigation shell: route, key and label of each entry.
var menu = []struct {
	route Route
	key   string
	label string
}{
	{RouteDashboard, "1", "Dashboard"},
	{RouteStocks, "2", "Stocks"},
	{RouteOrder, "3", "Place Order"},
	{RoutePortfolio, "4", "Portfolios"},
}

// renderChrome wraps a page view in the shared header and menu bar.
func renderChrome(active Route, title, content string, width int) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("stockdesk"))
	for _, item := range menu {
		style := menuStyle
		// the stocks entry stays highlighted on its child pages too
		if item.route == active ||
			(item.route == RouteStocks && (active == RouteStockForm || active == RoutePrices || active == RoutePriceForm)) {
			style = menuActiveStyle
		}
		b.WriteString(style.Render("[" + item.key + "] " + item.label))
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(content)
	return b.String()
}

// banner renders the dismissible inline notice every page uses for
// errors and success messages.
func banner(msg string, success bool) string {
	if msg == "" {
		return ""
	}
	if success {
		return successBannerStyle.Render(msg) + "\n"
	}
	return errorBannerStyle.Render(msg) + "\n"
}

// pad fits s into a w-rune table column, truncating with an ellipsis.
func pad(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}

// sentence upper-cases the first rune of an error message so it can be
// shown as banner copy.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r := []rune(msg)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
