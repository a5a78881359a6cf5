// Package console is the interactive terminal UI of stockdesk.
//
// The console is a bubbletea program. Each screen of the original admin
// console is a page; pages share two controllers: a list controller for
// the table screens and a form controller for the create/edit screens.
// Pages never talk to each other directly: navigation goes through a
// navMsg carrying the route and, when the target page depends on an
// entity, the navigation payload. A page that requires a payload and
// does not receive one redirects to the stocks list.
package console

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
	"github.com/avikale/stockdesk/api"
)

// Route identifies a console page. Values mirror the URL paths of the
// original browser console.
type Route string

const (
	RouteDashboard Route = "/"
	RouteStocks    Route = "/stocks"
	RouteStockForm Route = "/add-stock"
	RoutePrices    Route = "/stock-prices"
	RoutePriceForm Route = "/add-stock-price"
	RouteOrder     Route = "/place-order"
	RoutePortfolio Route = "/portfolios"
)

// requestTimeout bounds every backend call issued by a page.
const requestTimeout = 15 * time.Second

// successRedirectDelay is how long a form shows its success banner
// before navigating away. A UX delay, nothing synchronizes on it.
const successRedirectDelay = 1500 * time.Millisecond

// page is one screen of the console.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(width int) string
	// title is shown in the header bar.
	title() string
	// capturing reports whether a text field currently consumes plain
	// keystrokes, which suspends the global menu keys.
	capturing() bool
}

// navMsg switches the console to another page.
type navMsg struct {
	route   Route
	payload payload
}

// navigate builds the command a page returns to move elsewhere.
func navigate(route Route, p payload) tea.Cmd {
	return func() tea.Msg { return navMsg{route: route, payload: p} }
}

// App is the bubbletea root model: the navigation shell plus the
// current page.
type App struct {
	client *api.Client
	log    *slog.Logger

	route Route
	page  page
	width int
}

// New builds the console starting on the dashboard.
func New(client *api.Client, log *slog.Logger) *App {
	a := &App{client: client, log: log, width: 100}
	a.route, a.page = a.resolve(RouteDashboard, payload{})
	return a
}

func (a *App) Init() tea.Cmd { return a.page.Init() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width

	case navMsg:
		a.route, a.page = a.resolve(msg.route, msg.payload)
		return a, a.page.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if !a.page.capturing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				return a, navigate(RouteDashboard, payload{})
			case "2":
				return a, navigate(RouteStocks, payload{})
			case "3":
				return a, navigate(RouteOrder, payload{})
			case "4":
				return a, navigate(RoutePortfolio, payload{})
			}
		}
	}

	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return renderChrome(a.route, a.page.title(), a.page.View(a.width), a.width)
}

// resolve maps a route and payload to a page. Routes that depend on a
// navigation payload fail closed: without it the console lands on the
// stocks list instead.
func (a *App) resolve(route Route, p payload) (Route, page) {
	switch route {
	case RouteDashboard:
		return route, newDashboardPage()
	case RouteStocks:
		return route, newStocksPage(a.client, a.log)
	case RouteStockForm:
		// p.Stock selects edit mode; creating needs no payload.
		return route, newStockFormPage(a.client, a.log, p.Stock)
	case RoutePrices:
		if p.Stock == nil {
			a.log.Warn("prices route without stock payload, redirecting", "route", route)
			return RouteStocks, newStocksPage(a.client, a.log)
		}
		return route, newPricesPage(a.client, a.log, *p.Stock)
	case RoutePriceForm:
		if p.Stock == nil {
			a.log.Warn("price form route without stock payload, redirecting", "route", route)
			return RouteStocks, newStocksPage(a.client, a.log)
		}
		return route, newPriceFormPage(a.client, a.log, *p.Stock, p.Price)
	case RouteOrder:
		return route, newOrderPage(a.client, a.log)
	case RoutePortfolio:
		return route, newPortfolioPage(a.client, a.log)
	}
	a.log.Warn("unknown route, redirecting to dashboard", "route", route)
	return RouteDashboard, newDashboardPage()
}

// payload carries the entity a page depends on across a navigation,
// the console's equivalent of router location state.
type payload struct {
	Stock *stockdesk.Stock
	Price *stockdesk.StockPrice
}

// withTimeout wraps a backend call for use inside a tea.Cmd.
func withTimeout(fn func(ctx context.Context) tea.Msg) tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return fn(ctx)
}
