package config

import "testing"

func TestLiveRequiresAllThreeCredentials(t *testing.T) {
	tests := []struct {
		name     string
		cfg      RazorpayConfig
		wantLive bool
	}{
		{"all set", RazorpayConfig{KeyID: "k", KeySecret: "s", AccountNumber: "123"}, true},
		{"missing key id", RazorpayConfig{KeySecret: "s", AccountNumber: "123"}, false},
		{"missing secret", RazorpayConfig{KeyID: "k", AccountNumber: "123"}, false},
		{"missing account", RazorpayConfig{KeyID: "k", KeySecret: "s"}, false},
		{"none set", RazorpayConfig{}, false},
	}
	for _, tc := range tests {
		if got := tc.cfg.Live(); got != tc.wantLive {
			t.Errorf("%s: Live() = %v, want %v", tc.name, got, tc.wantLive)
		}
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc")
	t.Setenv("RAZORPAY_KEY_SECRET", "shh")
	t.Setenv("RAZORPAY_ACCOUNT_NUMBER", "2323230012345678")

	cfg := New()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !cfg.Razorpay.Live() {
		t.Error("expected live mode with all credentials present")
	}
	if cfg.Razorpay.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.Razorpay.BaseURL)
	}
}
