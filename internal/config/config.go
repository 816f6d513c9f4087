package config

import (
	"os"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

type Config struct {
	Port      string
	LogLevel  string
	StaticDir string
	Razorpay  RazorpayConfig
}

// RazorpayConfig holds the upstream FAV API credentials. Live mode requires
// all three of KeyID, KeySecret and AccountNumber; absence of any one forces
// demo mode.
type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	AccountNumber string
	BaseURL       string
}

// Live reports whether the upstream API should be called for real.
func (r RazorpayConfig) Live() bool {
	return r.KeyID != "" && r.KeySecret != "" && r.AccountNumber != ""
}

func New() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		LogLevel:  os.Getenv("LOGLEVEL"),
		StaticDir: getEnv("STATICDIR", "public"),
		Razorpay: RazorpayConfig{
			KeyID:         os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
			AccountNumber: os.Getenv("RAZORPAY_ACCOUNT_NUMBER"),
			BaseURL:       getEnv("RAZORPAY_BASE_URL", defaultBaseURL),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
