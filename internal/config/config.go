// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings shared by the CLI and the HTTP server
type Config struct {
	Address        string
	DatabasePath   string
	CatalogPath    string
	InvoiceDir     string
	CompanyName    string
	CompanyAddress string
	LogLevel       string
	Debug          bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Load reads configuration from environment variables and an optional
// .env file. Unset keys fall back to defaults suitable for local runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Address:        valueOrDefault(k.String("BILLING_ADDRESS"), ":8080"),
		DatabasePath:   k.String("BILLING_DB_PATH"),
		CatalogPath:    k.String("BILLING_CATALOG_PATH"),
		InvoiceDir:     valueOrDefault(k.String("BILLING_INVOICE_DIR"), "invoices"),
		CompanyName:    k.String("BILLING_COMPANY_NAME"),
		CompanyAddress: k.String("BILLING_COMPANY_ADDRESS"),
		LogLevel:       valueOrDefault(k.String("BILLING_LOG_LEVEL"), "info"),
		Debug:          parseBool(k.String("BILLING_DEBUG")),
		ReadTimeout:    parseDuration(k.String("BILLING_READ_TIMEOUT"), "30s"),
		WriteTimeout:   parseDuration(k.String("BILLING_WRITE_TIMEOUT"), "1m"),
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseDuration(value, fallback string) time.Duration {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
