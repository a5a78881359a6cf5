package stockdesk

import "fmt"

// OrderType is the side of an order.
type OrderType string

const (
	Buy  OrderType = "BUY"
	Sell OrderType = "SELL"
)

// ParseOrderType validates and returns the order type named by s.
func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(s) {
	case Buy, Sell:
		return OrderType(s), nil
	}
	return "", fmt.Errorf("unknown order type %q (use BUY or SELL)", s)
}

// Order is a buy or sell instruction against a portfolio. Orders are
// write-only from the console: they are created, never listed or
// edited here.
type Order struct {
	PortfolioID  string    `json:"portfolio_id"`
	StockID      string    `json:"stock_id"`
	Type         OrderType `json:"type"`
	PricePerUnit float64   `json:"price_per_unit"`
	Quantity     float64   `json:"quantity"`
}

// Validate checks the order before submission. Messages match the ones
// shown next to the form fields.
func (o Order) Validate() error {
	if o.StockID == "" {
		return fmt.Errorf("please select a stock")
	}
	if _, err := ParseOrderType(string(o.Type)); err != nil {
		return fmt.Errorf("please select an action (BUY or SELL)")
	}
	if o.PricePerUnit <= 0 {
		return fmt.Errorf("please enter a valid price per unit (must be greater than 0)")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("please enter a valid quantity (must be greater than 0)")
	}
	return nil
}
