package estclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/est-lv/consumption-scraper/internal/models"
)

var (
	// ErrChartNotFound signals that the authenticated page carries no chart
	// element with a data-values attribute. This is also how a rejected
	// login surfaces: the portal answers with a page that has no chart.
	ErrChartNotFound = errors.New("chart element with data-values attribute not found")

	// ErrPayloadShape signals that the embedded JSON does not contain the
	// expected values -> "A+" -> total -> data path.
	ErrPayloadShape = errors.New(`chart payload is missing the values["A+"].total.data path`)
)

// graphPayload mirrors the JSON embedded in the chart element's data-values
// attribute. Only the A+ (consumed energy) series is read.
type graphPayload struct {
	Values map[string]struct {
		Total struct {
			Data []rawEntry `json:"data"`
		} `json:"total"`
	} `json:"values"`
}

// rawEntry is one data point as the portal encodes it.
type rawEntry struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// normalizePayload extracts the embedded graph JSON from the authenticated
// page and flattens it into consumption records, preserving source order.
func normalizePayload(page []byte) ([]models.ConsumptionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	raw, ok := doc.Find("div.chart").Attr("data-values")
	if !ok {
		return nil, ErrChartNotFound
	}

	var payload graphPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decoding chart payload: %w", err)
	}

	series, ok := payload.Values["A+"]
	if !ok || series.Total.Data == nil {
		return nil, ErrPayloadShape
	}

	records := make([]models.ConsumptionRecord, 0, len(series.Total.Data))
	for _, entry := range series.Total.Data {
		records = append(records, models.ConsumptionRecord{
			Data:  formatTimestamp(entry.Timestamp),
			Value: entry.Value,
		})
	}
	return records, nil
}

// formatTimestamp converts an epoch-milliseconds value to a host-local
// "YYYY-MM-DD HH:MM:SS" string. Sub-second precision is truncated.
func formatTimestamp(ms int64) string {
	return time.Unix(ms/1000, 0).Format("2006-01-02 15:04:05")
}
