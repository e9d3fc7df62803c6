// Package config provides configuration structures and loading for the consumption scraper.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the consumption scraper.
type Config struct {
	// Portal account username
	Username string
	// Portal account password
	Password string
	// Electricity meter ID
	MeterID string
	// Portal base URL
	BaseURL string
	// HTTP client timeout
	HTTPTimeout time.Duration
	// Log level (debug, info, warn, error)
	LogLevel string
	// Log format (json, console)
	LogFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://www.e-st.lv",
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// LoadFromEnv loads configuration from environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("EST_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("EST_PASSWORD"); v != "" {
		c.Password = v
	}
	if v := os.Getenv("EST_METER"); v != "" {
		c.MeterID = v
	}
	if v := os.Getenv("EST_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			c.HTTPTimeout = time.Duration(i) * time.Second
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}
