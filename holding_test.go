package stockdesk

import "testing"

func f(v float64) *float64 { return &v }

func TestProfitLoss(t *testing.T) {
	testCases := []struct {
		name   string
		avg    *float64
		latest *float64
		want   Percent
		ok     bool
	}{
		{"Gain", f(150), f(155.50), 3.6667, true},
		{"Loss", f(2800), f(2750), -1.7857, true},
		{"Flat", f(100), f(100), 0, true},
		{"Missing average", nil, f(100), 0, false},
		{"Missing latest", f(100), nil, 0, false},
		{"Both missing", nil, nil, 0, false},
		{"Zero average", f(0), f(100), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ProfitLoss(tc.avg, tc.latest)
			if ok != tc.ok {
				t.Fatalf("ProfitLoss ok = %v, want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ProfitLoss = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPriceTrend(t *testing.T) {
	testCases := []struct {
		name   string
		avg    *float64
		latest *float64
		want   Trend
	}{
		{"Up", f(150), f(155.50), TrendUp},
		{"Down", f(2800), f(2750), TrendDown},
		{"Equal", f(100), f(100), TrendFlat},
		{"Missing average", nil, f(100), TrendFlat},
		{"Missing latest", f(100), nil, TrendFlat},
		{"Both missing", nil, nil, TrendFlat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PriceTrend(tc.avg, tc.latest); got != tc.want {
				t.Errorf("PriceTrend = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTrendString(t *testing.T) {
	if TrendUp.String() != "up" || TrendDown.String() != "down" || TrendFlat.String() != "n/a" {
		t.Error("unexpected trend labels")
	}
}

func TestPercentStrings(t *testing.T) {
	if got := Percent(3.6667).String(); got != "3.67%" {
		t.Errorf("String = %q", got)
	}
	if got := Percent(3.6667).SignedString(); got != "+3.67%" {
		t.Errorf("SignedString = %q", got)
	}
	if got := Percent(-1.7857).SignedString(); got != "-1.79%" {
		t.Errorf("SignedString = %q", got)
	}
}
