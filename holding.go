package stockdesk

// Holding is one position of a portfolio, derived entirely server-side.
// The backend transmits the latest price as current_market_price; it is
// aliased here to LatestMarketPrice. Either price may be absent, so both
// are pointers.
type Holding struct {
	StockSymbol       string   `json:"stock_symbol"`
	AverageCostPrice  *float64 `json:"average_cost_price"`
	LatestMarketPrice *float64 `json:"current_market_price"`
	Quantity          float64  `json:"quantity"`
}

// Portfolio is the read-only holdings view for one user.
type Portfolio struct {
	Username string    `json:"username"`
	Stocks   []Holding `json:"stocks"`
}

// ProfitLoss computes the presentational profit/loss percentage
// (latest-avg)/avg*100 for a holding. ok is false when either price is
// missing or the average is zero; callers display "N/A" in that case.
// The function is total: it never panics on nil inputs.
func ProfitLoss(avg, latest *float64) (p Percent, ok bool) {
	if avg == nil || latest == nil || *avg == 0 {
		return 0, false
	}
	return Percent((*latest - *avg) / *avg * 100), true
}

// Trend is the three-way price movement indicator of a holding.
type Trend int

const (
	TrendFlat Trend = iota // equal prices, or either price missing
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	}
	return "n/a"
}

// PriceTrend compares the latest market price to the average cost.
// Missing values on either side yield TrendFlat, never an error.
func PriceTrend(avg, latest *float64) Trend {
	if avg == nil || latest == nil {
		return TrendFlat
	}
	switch {
	case *latest > *avg:
		return TrendUp
	case *latest < *avg:
		return TrendDown
	}
	return TrendFlat
}

// ProfitLoss applies the package-level ProfitLoss to the holding's own
// prices.
func (h Holding) ProfitLoss() (Percent, bool) {
	return ProfitLoss(h.AverageCostPrice, h.LatestMarketPrice)
}

// Trend applies PriceTrend to the holding's own prices.
func (h Holding) Trend() Trend {
	return PriceTrend(h.AverageCostPrice, h.LatestMarketPrice)
}
