package estclient

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/est-lv/consumption-scraper/internal/models"
)

func chartPage(dataValues string) []byte {
	return []byte(fmt.Sprintf(
		`<html><body><div class="chart" data-values='%s'></div></body></html>`,
		dataValues,
	))
}

func localTimestamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).Format("2006-01-02 15:04:05")
}

func TestNormalizePayload(t *testing.T) {
	page := chartPage(`{"values":{"A+":{"total":{"data":[
		{"timestamp":1456790400000,"value":12.5},
		{"timestamp":1456794000000,"value":0.75},
		{"timestamp":1456797600000,"value":3}
	]}}}}`)

	records, err := normalizePayload(page)
	require.NoError(t, err)
	require.Equal(t, []models.ConsumptionRecord{
		{Data: localTimestamp(1456790400), Value: 12.5},
		{Data: localTimestamp(1456794000), Value: 0.75},
		{Data: localTimestamp(1456797600), Value: 3},
	}, records)
}

func TestNormalizePayloadPreservesOrderAndCount(t *testing.T) {
	const n = 24
	entries := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			entries += ","
		}
		entries += fmt.Sprintf(`{"timestamp":%d,"value":%d.5}`, 1456790400000+int64(i)*3600000, i)
	}
	page := chartPage(`{"values":{"A+":{"total":{"data":[` + entries + `]}}}}`)

	records, err := normalizePayload(page)
	require.NoError(t, err)
	require.Len(t, records, n)
	for i, rec := range records {
		require.Equal(t, float64(i)+0.5, rec.Value)
		require.Equal(t, localTimestamp(1456790400+int64(i)*3600), rec.Data)
	}
}

func TestNormalizePayloadEmptySeries(t *testing.T) {
	page := chartPage(`{"values":{"A+":{"total":{"data":[]}}}}`)

	records, err := normalizePayload(page)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestNormalizePayloadChartMissing(t *testing.T) {
	page := []byte(`<html><body><p>Lietotaja autentifikacija</p></body></html>`)

	_, err := normalizePayload(page)
	require.ErrorIs(t, err, ErrChartNotFound)
}

func TestNormalizePayloadAttributeMissing(t *testing.T) {
	page := []byte(`<html><body><div class="chart"></div></body></html>`)

	_, err := normalizePayload(page)
	require.ErrorIs(t, err, ErrChartNotFound)
}

func TestNormalizePayloadMalformedJSON(t *testing.T) {
	page := chartPage(`{"values":{`)

	_, err := normalizePayload(page)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrChartNotFound)
	require.NotErrorIs(t, err, ErrPayloadShape)
}

func TestNormalizePayloadMissingSeries(t *testing.T) {
	page := chartPage(`{"values":{"A-":{"total":{"data":[{"timestamp":1456790400000,"value":1}]}}}}`)

	_, err := normalizePayload(page)
	require.ErrorIs(t, err, ErrPayloadShape)
}

func TestNormalizePayloadMissingDataPath(t *testing.T) {
	page := chartPage(`{"values":{"A+":{"total":{}}}}`)

	_, err := normalizePayload(page)
	require.ErrorIs(t, err, ErrPayloadShape)
}

func TestFormatTimestampTruncatesMilliseconds(t *testing.T) {
	require.Equal(t, localTimestamp(1456790400), formatTimestamp(1456790400999))
}
