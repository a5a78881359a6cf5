package cmd

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STOCKDESK_API_URL", "")
	t.Setenv("STOCKDESK_PORTFOLIO_ID", "")
	t.Setenv("STOCKDESK_USER_ID", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.PortfolioID != defaultPortfolioID || cfg.UserID != defaultUserID {
		t.Errorf("ids = %q %q, want defaults", cfg.PortfolioID, cfg.UserID)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STOCKDESK_API_URL", "https://stocks.example.com")
	t.Setenv("STOCKDESK_USER_ID", "b7f1a9ce-4c14-4aa1-8f6e-2f3d6f8e9a01")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.APIURL != "https://stocks.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.UserID != "b7f1a9ce-4c14-4aa1-8f6e-2f3d6f8e9a01" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
}

func TestLoadConfigRejectsBadUUID(t *testing.T) {
	t.Setenv("STOCKDESK_PORTFOLIO_ID", "not-a-uuid")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig accepted a malformed portfolio id")
	}
}

func TestFormatQueryNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{150, "150"},
		{2450.75, "2450.75"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := formatQueryNumber(c.in); got != c.want {
			t.Errorf("formatQueryNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
