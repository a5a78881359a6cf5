package stockdesk

import "fmt"

// Exchange identifies the market a stock is listed on.
type Exchange string

const (
	NSE Exchange = "NSE"
	BSE Exchange = "BSE"
)

// Exchanges lists the supported exchanges in display order.
func Exchanges() []Exchange { return []Exchange{NSE, BSE} }

// ParseExchange validates and returns the exchange named by s.
func ParseExchange(s string) (Exchange, error) {
	switch Exchange(s) {
	case NSE, BSE:
		return Exchange(s), nil
	}
	return "", fmt.Errorf("unknown exchange %q (use NSE or BSE)", s)
}

// sectors is the fixed catalog the backend accepts.
var sectors = []string{
	"Banks",
	"ETF",
	"IT Services",
	"Finance",
	"Hotels & Restaurants",
	"Information Technology",
	"Infrastructure Developers & Operators",
	"Nifty Bank",
	"Paints",
	"Pharma & Healthcare",
	"Refineries/Oil-Gas",
	"Steel",
	"Tobacco Products",
}

// Sectors returns the sector catalog in display order.
func Sectors() []string { return append([]string(nil), sectors...) }

// ValidSector reports whether s belongs to the sector catalog.
func ValidSector(s string) bool {
	for _, sec := range sectors {
		if sec == s {
			return true
		}
	}
	return false
}

const (
	maxSymbolLen = 10
	maxNameLen   = 100
)

// Stock is a listed instrument as the backend returns it. The symbol is
// unique per exchange; the id is assigned server-side.
type Stock struct {
	ID       string   `json:"id,omitempty"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Exchange Exchange `json:"exchange"`
	Sector   string   `json:"sector"`
}

// Validate checks the stock fields before they are sent to the backend.
// The backend remains the source of truth and may still reject.
func (s Stock) Validate() error {
	if s.Symbol == "" {
		return fmt.Errorf("please enter a stock symbol")
	}
	if len(s.Symbol) > maxSymbolLen {
		return fmt.Errorf("symbol must be at most %d characters", maxSymbolLen)
	}
	if s.Name == "" {
		return fmt.Errorf("please enter a stock name")
	}
	if len(s.Name) > maxNameLen {
		return fmt.Errorf("name must be at most %d characters", maxNameLen)
	}
	if _, err := ParseExchange(string(s.Exchange)); err != nil {
		return err
	}
	if !ValidSector(s.Sector) {
		return fmt.Errorf("please select a sector")
	}
	return nil
}
