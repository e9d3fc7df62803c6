// Package estclient implements the authenticated consumption-data client for
// the e-st.lv private portal. The portal has no API; data is embedded in an
// HTML page that is only served after a session-cookie login handshake.
package estclient

import (
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/est-lv/consumption-scraper/internal/config"
	"github.com/est-lv/consumption-scraper/internal/models"
	"github.com/est-lv/consumption-scraper/internal/useragent"
)

const (
	// loginPath is the portal's authentication endpoint.
	loginPath = "/lv/private/user-authentification/"
	// dataPath is the consumption-graph page carrying the embedded payload.
	dataPath = "/lv/private/paterini-un-norekini/paterinu-grafiki/"
)

// Client fetches consumption data for a single meter from the portal.
//
// A Client is not safe for concurrent use: the login and data requests share
// one cookie jar, and the session cookie set by the login handshake is the
// authentication mechanism. Callers needing parallel fetches must create
// separate clients, each performing its own login.
type Client struct {
	http     *resty.Client
	login    string
	password string
	meterID  string
	logger   zerolog.Logger

	// now supplies the current time for date defaulting. Tests override it.
	now func() time.Time
}

// New creates a Client for the given portal account and meter. It fails if
// the credentials or meter ID are missing; no network activity happens here.
func New(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("username and password must be set")
	}
	if cfg.MeterID == "" {
		return nil, errors.New("electricity meter ID must be set")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(cfg.BaseURL)
	httpClient.SetCookieJar(jar)
	httpClient.SetTimeout(cfg.HTTPTimeout)
	// The portal serves its pages to browsers; plain Go user agents get bounced.
	httpClient.SetHeader("User-Agent", useragent.Random())

	return &Client{
		http:     httpClient,
		login:    cfg.Username,
		password: cfg.Password,
		meterID:  cfg.MeterID,
		logger:   logger.With().Str("component", "estclient").Logger(),
		now:      time.Now,
	}, nil
}

// FetchDayData fetches hourly consumption for one day. Zero date components
// default to the current local date.
func (c *Client) FetchDayData(ctx context.Context, year, month, day int) ([]models.ConsumptionRecord, error) {
	return c.fetch(ctx, query{
		period:      models.PeriodDay,
		year:        year,
		month:       month,
		day:         day,
		granularity: models.GranularityHour,
	})
}

// FetchMonthData fetches daily consumption for one month. Zero date
// components default to the current local date.
func (c *Client) FetchMonthData(ctx context.Context, year, month int) ([]models.ConsumptionRecord, error) {
	return c.fetch(ctx, query{
		period:      models.PeriodMonth,
		year:        year,
		month:       month,
		granularity: models.GranularityDay,
	})
}

// FetchYearData fetches consumption for one year. A zero year defaults to the
// current year.
func (c *Client) FetchYearData(ctx context.Context, year int) ([]models.ConsumptionRecord, error) {
	return c.fetch(ctx, query{
		period: models.PeriodYear,
		year:   year,
	})
}

// fetch performs the two-step authenticated retrieval: GET the data URL to
// obtain the login challenge, POST the scraped form tokens merged with the
// real credentials, then normalize the payload embedded in the response.
//
// The handshake runs on every call, even if the session cookie from a
// previous fetch is still valid. There is no explicit login-success check;
// a rejected login surfaces as ErrChartNotFound from the normalizer.
func (c *Client) fetch(ctx context.Context, q query) ([]models.ConsumptionRecord, error) {
	dataURL := c.dataURL(q)
	c.logger.Debug().Str("url", dataURL).Msg("requesting data page")

	res, err := c.http.R().
		SetContext(ctx).
		Get(dataURL)
	if err != nil {
		return nil, fmt.Errorf("requesting data page: %w", err)
	}

	form, err := extractLoginForm(res.Body())
	if err != nil {
		return nil, fmt.Errorf("reading login challenge: %w", err)
	}
	form["login"] = c.login
	form["password"] = c.password

	res, err = c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(loginPath)
	if err != nil {
		return nil, fmt.Errorf("submitting login form: %w", err)
	}

	records, err := normalizePayload(res.Body())
	if err != nil {
		return nil, fmt.Errorf("parsing data page: %w", err)
	}

	c.logger.Info().
		Str("meter", c.meterID).
		Str("period", string(q.period)).
		Int("count", len(records)).
		Msg("fetched consumption data")

	return records, nil
}
