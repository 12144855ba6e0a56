package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port                   string
	Env                    string
	StripeSecretKey        string
	StripeWebhookKey       string
	AirtableAPIKey         string
	AirtableBaseID         string
	VerticalTable          string
	ConfigTable            string
	OrderNotificationURL   string // receives the order-placed payment link message
	ConfirmationWebhookURL string // receives the normalized transaction after payment
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                   getEnv("PORT", "3000"),
		Env:                    getEnv("ENV", "development"),
		StripeSecretKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookKey:       os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AirtableAPIKey:         os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID:         os.Getenv("AIRTABLE_BASE_ID"),
		VerticalTable:          getEnv("AIRTABLE_VERTICAL_TABLE", "Current Vertical"),
		ConfigTable:            getEnv("AIRTABLE_CONFIG_TABLE", "Configuration Table"),
		OrderNotificationURL:   os.Getenv("SEND_PAYMENT_WEBHOOK_URL"),
		ConfirmationWebhookURL: os.Getenv("CONFIRMATION_WEBHOOK_URL"),
	}

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" ||
		cfg.AirtableAPIKey == "" || cfg.AirtableBaseID == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
