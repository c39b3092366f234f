package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Published endpoints the shop runs against when nothing is configured.
// The catalog and orders URLs are spreadsheet CSV exports; the script URL is
// the form-handler endpoint that records submitted orders.
const (
	DefaultScriptURL   = "https://script.google.com/macros/s/AKfycbwbxP0c4eI1KvjrFYazyaqXTOpxF2X0tLuPuDtCmbczOA1V2yMs8aWMc115GMQNA8WIcA/exec"
	DefaultProductsURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRuxfN3pkRvY7gU6w474iyADXj69wz4jVQI0qWMFqqJe0lmKBqSe8Z5yIwNZ5wnPmq_MNWaIjIWE6vo/pub?gid=512772452&single=true&output=csv"
	DefaultOrdersURL   = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRuxfN3pkRvY7gU6w474iyADXj69wz4jVQI0qWMFqqJe0lmKBqSe8Z5yIwNZ5wnPmq_MNWaIjIWE6vo/pub?gid=1214934860&single=true&output=csv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Sheets      SheetsConfig
	Script      ScriptConfig
	Catalog     CatalogConfig
}

// SheetsConfig holds the published CSV export URLs
type SheetsConfig struct {
	ProductsURL string
	OrdersURL   string
}

// ScriptConfig holds the order submission endpoint
type ScriptConfig struct {
	URL string
}

// CatalogConfig controls the background catalog refresh
type CatalogConfig struct {
	RefreshMinutes int // 0 disables the refresh loop
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOG_REFRESH_MINUTES", "10")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	refreshMinutes, err := strconv.Atoi(getEnvOrViper("CATALOG_REFRESH_MINUTES", "10"))
	if err != nil || refreshMinutes < 0 {
		return nil, fmt.Errorf("CATALOG_REFRESH_MINUTES must be a non-negative integer")
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Sheets: SheetsConfig{
			ProductsURL: strings.TrimSpace(getEnvOrViper("PRODUCTS_CSV_URL", DefaultProductsURL)),
			OrdersURL:   strings.TrimSpace(getEnvOrViper("ORDERS_CSV_URL", DefaultOrdersURL)),
		},
		Script: ScriptConfig{
			URL: strings.TrimSpace(getEnvOrViper("SCRIPT_URL", DefaultScriptURL)),
		},
		Catalog: CatalogConfig{
			RefreshMinutes: refreshMinutes,
		},
	}

	// Validate required fields
	if cfg.Sheets.ProductsURL == "" {
		return nil, fmt.Errorf("PRODUCTS_CSV_URL is required")
	}
	if cfg.Sheets.OrdersURL == "" {
		return nil, fmt.Errorf("ORDERS_CSV_URL is required")
	}
	if cfg.Script.URL == "" {
		return nil, fmt.Errorf("SCRIPT_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
