package stockdesk

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// All monetary values on the wire are rupee amounts as floats. Display
// goes through the INR currency formatter so tables show "₹1,234.50"
// instead of raw floats.

// FormatINR renders v as an Indian rupee amount.
func FormatINR(v float64) string {
	cur := *money.New(0, money.INR).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
