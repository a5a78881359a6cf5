package stockdesk

import (
	"strings"
	"testing"
)

func TestStockValidate(t *testing.T) {
	valid := Stock{Symbol: "AAPL", Name: "Apple Inc.", Exchange: NSE, Sector: "Information Technology"}

	testCases := []struct {
		name      string
		mutate    func(*Stock)
		expectErr bool
	}{
		{"Valid", func(s *Stock) {}, false},
		{"Valid BSE", func(s *Stock) { s.Exchange = BSE }, false},
		{"Missing symbol", func(s *Stock) { s.Symbol = "" }, true},
		{"Symbol too long", func(s *Stock) { s.Symbol = strings.Repeat("A", 11) }, true},
		{"Missing name", func(s *Stock) { s.Name = "" }, true},
		{"Name too long", func(s *Stock) { s.Name = strings.Repeat("x", 101) }, true},
		{"Unknown exchange", func(s *Stock) { s.Exchange = "NYSE" }, true},
		{"Missing sector", func(s *Stock) { s.Sector = "" }, true},
		{"Sector outside catalog", func(s *Stock) { s.Sector = "Aerospace" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := s.Validate()
			if (err != nil) != tc.expectErr {
				t.Errorf("Validate() error = %v, want error: %v", err, tc.expectErr)
			}
		})
	}
}

func TestSectorsCatalog(t *testing.T) {
	all := Sectors()
	if len(all) != 13 {
		t.Fatalf("catalog has %d sectors, want 13", len(all))
	}
	for _, s := range all {
		if !ValidSector(s) {
			t.Errorf("catalog sector %q not valid", s)
		}
	}
	// the returned slice is a copy
	all[0] = "mutated"
	if ValidSector("mutated") {
		t.Error("Sectors() must return a copy of the catalog")
	}
}

func TestParseExchange(t *testing.T) {
	if _, err := ParseExchange("NSE"); err != nil {
		t.Errorf("NSE: %v", err)
	}
	if _, err := ParseExchange("BSE"); err != nil {
		t.Errorf("BSE: %v", err)
	}
	if _, err := ParseExchange("nse"); err == nil {
		t.Error("lowercase exchange accepted")
	}
	if _, err := ParseExchange(""); err == nil {
		t.Error("empty exchange accepted")
	}
}
