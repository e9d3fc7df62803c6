package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/est-lv/consumption-scraper/internal/estclient"
	"github.com/est-lv/consumption-scraper/internal/models"
	"github.com/est-lv/consumption-scraper/internal/output"
)

func fetchCmd() *cobra.Command {
	var period string
	var year, month, day int
	var outfile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch consumption data for a day, month or year",
		Long: `Logs in to the portal and fetches normalized consumption records for the
selected period. Date components left at zero default to the current local
date at the time of the request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			if cfg.Username == "" || cfg.Password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			if cfg.MeterID == "" {
				return fmt.Errorf("--meter is required")
			}

			client, err := estclient.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("creating portal client: %w", err)
			}

			ctx := context.Background()

			var records []models.ConsumptionRecord
			switch period {
			case "day":
				records, err = client.FetchDayData(ctx, year, month, day)
			case "month":
				records, err = client.FetchMonthData(ctx, year, month)
			case "year":
				records, err = client.FetchYearData(ctx, year)
			default:
				return fmt.Errorf("invalid --period %q: must be one of day, month, year", period)
			}
			if err != nil {
				return fmt.Errorf("fetching %s data: %w", period, err)
			}

			return output.New(logger).Write(records, outfile)
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "Report time period (day, month, year)")
	cmd.Flags().IntVar(&year, "year", 0, "Year override (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month override (defaults to current)")
	cmd.Flags().IntVar(&day, "day", 0, "Day override (defaults to current)")
	cmd.Flags().StringVar(&outfile, "outfile", "", "Write output to this file instead of standard output")

	return cmd
}
