package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avikale/stockdesk"
)

// stockPayload is the write shape for stocks: the id travels in the
// path, never in the body.
type stockPayload struct {
	Symbol   string             `json:"symbol"`
	Name     string             `json:"name"`
	Exchange stockdesk.Exchange `json:"exchange"`
	Sector   string             `json:"sector"`
}

// ListStocks fetches the full stock collection and its server-side count.
func (c *Client) ListStocks(ctx context.Context) ([]stockdesk.Stock, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/stocks", nil, "failed to fetch stocks")
	if err != nil {
		return nil, 0, err
	}
	var stocks []stockdesk.Stock
	if err := json.Unmarshal(env.Data, &stocks); err != nil {
		return nil, 0, fmt.Errorf("cannot decode stocks: %w", err)
	}
	return stocks, env.Count, nil
}

// CreateStock adds a new stock.
func (c *Client) CreateStock(ctx context.Context, s stockdesk.Stock) error {
	body := stockPayload{Symbol: s.Symbol, Name: s.Name, Exchange: s.Exchange, Sector: s.Sector}
	_, err := c.do(ctx, http.MethodPost, "/api/stocks", body, "failed to add stock")
	return err
}

// UpdateStock updates an existing stock, keyed by id.
func (c *Client) UpdateStock(ctx context.Context, s stockdesk.Stock) error {
	if s.ID == "" {
		return fmt.Errorf("api: stock id is required for update")
	}
	body := stockPayload{Symbol: s.Symbol, Name: s.Name, Exchange: s.Exchange, Sector: s.Sector}
	_, err := c.do(ctx, http.MethodPut, "/api/stocks/"+s.ID, body, "failed to update stock")
	return err
}

// DeleteStock removes a stock, keyed by symbol.
func (c *Client) DeleteStock(ctx context.Context, symbol string) error {
	if symbol == "" {
		return fmt.Errorf("api: stock symbol is required for delete")
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/stocks/"+symbol, nil, "failed to delete stock")
	return err
}
