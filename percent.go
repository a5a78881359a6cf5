package stockdesk

import "fmt"

// Percent is a percentage value for display.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// compare with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, the way
// the profit/loss column shows it.
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}
