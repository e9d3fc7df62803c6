// Package models provides shared data types for the consumption scraper.
package models

// Period selects the time span of a consumption report.
type Period string

const (
	// PeriodDay requests one day of data.
	PeriodDay Period = "D"
	// PeriodMonth requests one month of data.
	PeriodMonth Period = "M"
	// PeriodYear requests one year of data.
	PeriodYear Period = "Y"
)

// Granularity selects the resolution of data points within a period.
type Granularity string

const (
	// GranularityNative returns data points at the meter's native resolution.
	GranularityNative Granularity = "NATIVE"
	// GranularityHour returns hourly data points.
	GranularityHour Granularity = "H"
	// GranularityDay returns daily data points.
	GranularityDay Granularity = "D"
)

// ConsumptionRecord is a single normalized consumption data point.
type ConsumptionRecord struct {
	// Data is the reading time formatted as "YYYY-MM-DD HH:MM:SS" in host-local time.
	Data string `json:"data"`
	// Value is the consumption value, copied unchanged from the portal payload.
	Value float64 `json:"value"`
}
