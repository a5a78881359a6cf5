package stockdesk

import "testing"

func TestFormatINR(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want string
	}{
		{"Simple", 125.50, "₹125.50"},
		{"Thousands", 2000.75, "₹2,000.75"},
		{"Whole", 150, "₹150.00"},
		{"Sub rupee", 0.5, "₹0.50"},
		{"Zero", 0, "₹0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatINR(tc.in); got != tc.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
