package api

import (
	"context"
	"net/http"

	"github.com/avikale/stockdesk"
)

// PlaceOrder submits a buy/sell order. The configured portfolio id is
// filled in when the order does not carry one.
func (c *Client) PlaceOrder(ctx context.Context, o stockdesk.Order) error {
	if o.PortfolioID == "" {
		o.PortfolioID = c.portfolioID
	}
	if err := o.Validate(); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPost, "/api/transactions", o, "failed to place order")
	return err
}
