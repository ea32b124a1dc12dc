// Package razorpay provides a client for the Razorpay payment gateway API.
package razorpay

import (
	"os"
	"time"
)

// Config holds configuration for the Razorpay API client.
type Config struct {
	KeyID     string        // API key ID for basic authentication
	KeySecret string        // API key secret for basic authentication
	BaseURL   string        // Base URL for the API (e.g., "https://api.razorpay.com")
	Currency  string        // Currency for created payments
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Razorpay configuration from environment variables.
func LoadConfig() Config {
	currency := os.Getenv("RAZORPAY_CURRENCY")
	if currency == "" {
		currency = "INR"
	}
	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return Config{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		BaseURL:   baseURL,
		Currency:  currency,
		Timeout:   10 * time.Second,
	}
}

// Enabled reports whether gateway credentials are configured.
// Without credentials the checkout flow skips payment creation and orders
// keep their initial payment status.
func (c Config) Enabled() bool {
	return c.KeyID != "" && c.KeySecret != ""
}
