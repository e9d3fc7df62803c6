package estclient

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/est-lv/consumption-scraper/internal/models"
)

// query describes one consumption-data request.
type query struct {
	period      models.Period
	year        int
	month       int
	day         int
	granularity models.Granularity
}

// dataURL builds the data-endpoint URL for q. Omitted (zero) date components
// are filled from the current local date at call time, so two defaulted calls
// on opposite sides of a period boundary can target different periods.
//
// Values are not range-checked; an out-of-range month or day is passed
// through and rejected (or not) by the portal.
func (c *Client) dataURL(q query) string {
	now := c.now()

	year := q.year
	if year == 0 {
		year = now.Year()
	}

	params := url.Values{}
	params.Set("counterNumber", c.meterID)
	params.Set("period", string(q.period))

	switch q.period {
	case models.PeriodYear:
		params.Set("year", strconv.Itoa(year))
	case models.PeriodMonth:
		month := q.month
		if month == 0 {
			month = int(now.Month())
		}
		params.Set("year", strconv.Itoa(year))
		params.Set("month", strconv.Itoa(month))
		params.Set("granularity", string(q.granularity))
	case models.PeriodDay:
		month := q.month
		if month == 0 {
			month = int(now.Month())
		}
		day := q.day
		if day == 0 {
			day = now.Day()
		}
		params.Set("date", fmt.Sprintf("%02d.%02d.%04d", day, month, year))
		params.Set("granularity", string(q.granularity))
	}

	return dataPath + "?" + params.Encode()
}
