// Package main provides the entry point for the consumption scraper CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/est-lv/consumption-scraper/internal/config"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
	// BuildDate is set at build time.
	BuildDate = "unknown"
)

var cfg *config.Config

func main() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	rootCmd := &cobra.Command{
		Use:   "estscraper",
		Short: "e-st.lv consumption scraper - electricity usage data from the e-st.lv portal",
		Long: `e-st.lv consumption scraper fetches electricity-consumption time series from
the e-st.lv private portal by emulating a browser login session and extracting
the data embedded in the consumption-graph page.

Credentials can be supplied via flags or the EST_USERNAME, EST_PASSWORD and
EST_METER environment variables.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Username, "username", cfg.Username, "Portal username")
	rootCmd.PersistentFlags().StringVar(&cfg.Password, "password", cfg.Password, "Portal password")
	rootCmd.PersistentFlags().StringVar(&cfg.MeterID, "meter", cfg.MeterID, "Electricity meter ID")
	rootCmd.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Portal base URL")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")

	// Add subcommands
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger() zerolog.Logger {
	var logger zerolog.Logger

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format. Logs go to stderr so stdout stays clean for the
	// fetched records.
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}

	return logger
}
