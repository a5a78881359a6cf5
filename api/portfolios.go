package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avikale/stockdesk"
)

// GetPortfolio fetches the holdings view for the configured user.
func (c *Client) GetPortfolio(ctx context.Context) (*stockdesk.Portfolio, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/portfolios/"+c.userID, nil, "failed to fetch portfolio")
	if err != nil {
		return nil, err
	}
	var p stockdesk.Portfolio
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	return &p, nil
}
