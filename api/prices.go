package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avikale/stockdesk"
)

type createPricePayload struct {
	StockID    string              `json:"stock_id"`
	Price      float64             `json:"price"`
	RecordedAt stockdesk.Timestamp `json:"recorded_at"`
}

type updatePricePayload struct {
	Price      float64             `json:"price"`
	RecordedAt stockdesk.Timestamp `json:"recorded_at"`
}

// ListPrices fetches the full price history of one stock. The order is
// whatever the backend returns; callers sort for display.
func (c *Client) ListPrices(ctx context.Context, stockID string) ([]stockdesk.StockPrice, error) {
	if stockID == "" {
		return nil, fmt.Errorf("api: stock id is required")
	}
	env, err := c.do(ctx, http.MethodGet, "/api/stock-prices/"+stockID, nil, "failed to fetch stock prices")
	if err != nil {
		return nil, err
	}
	var prices []stockdesk.StockPrice
	if err := json.Unmarshal(env.Data, &prices); err != nil {
		return nil, fmt.Errorf("cannot decode stock prices: %w", err)
	}
	return prices, nil
}

// CreatePrice records a new price point for p.StockID.
func (c *Client) CreatePrice(ctx context.Context, p stockdesk.StockPrice) error {
	body := createPricePayload{StockID: p.StockID, Price: p.Price, RecordedAt: p.RecordedAt}
	_, err := c.do(ctx, http.MethodPost, "/api/stock-prices", body, "failed to add stock price")
	return err
}

// UpdatePrice updates an existing price point, keyed by id.
func (c *Client) UpdatePrice(ctx context.Context, p stockdesk.StockPrice) error {
	if p.ID == "" {
		return fmt.Errorf("api: price id is required for update")
	}
	body := updatePricePayload{Price: p.Price, RecordedAt: p.RecordedAt}
	_, err := c.do(ctx, http.MethodPut, "/api/stock-prices/"+p.ID, body, "failed to update stock price")
	return err
}

// DeletePrice removes a price point, keyed by id.
func (c *Client) DeletePrice(ctx context.Context, priceID string) error {
	if priceID == "" {
		return fmt.Errorf("api: price id is required for delete")
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/stock-prices/"+priceID, nil, "failed to delete stock price")
	return err
}
