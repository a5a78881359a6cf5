package stockdesk

import (
	"fmt"
	"sort"
)

// StockPrice is a single recorded price point for a stock.
type StockPrice struct {
	ID         string    `json:"id,omitempty"`
	StockID    string    `json:"stock_id"`
	Price      float64   `json:"price"`
	RecordedAt Timestamp `json:"recorded_at"`
}

// Validate checks the price fields before submission.
func (p StockPrice) Validate() error {
	if p.Price <= 0 {
		return fmt.Errorf("please enter a valid price")
	}
	if p.RecordedAt.IsZero() {
		return fmt.Errorf("please enter a valid date and time")
	}
	return nil
}

// SortPricesDesc orders prices latest first by recorded_at. The sort is
// stable so equal timestamps keep their fetched order.
func SortPricesDesc(prices []StockPrice) {
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[j].RecordedAt.Before(prices[i].RecordedAt)
	})
}
