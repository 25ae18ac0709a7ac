// Package alphavantage implements the daily market-data source against the
// Alpha Vantage TIME_SERIES_DAILY endpoint.
package alphavantage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"OilPulse/internal/domain/models"
	domsvc "OilPulse/internal/domain/service"
	xhttp "OilPulse/pkg/http"
	applogger "OilPulse/pkg/logger"
	"OilPulse/pkg/util"

	"github.com/cenkalti/backoff/v4"
)

type Client struct {
	baseURL       string
	apiKey        string
	http          *xhttp.Client
	maxRetries    uint64
	retryInterval time.Duration
	log           *applogger.Logger
}

type Options struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
}

func New(opts Options, log *applogger.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://www.alphavantage.co"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryInterval == 0 {
		opts.RetryInterval = 5 * time.Second
	}
	return &Client{
		baseURL:       opts.BaseURL,
		apiKey:        opts.APIKey,
		http:          xhttp.NewClient(xhttp.WithTimeout(opts.Timeout)),
		maxRetries:    uint64(opts.MaxRetries),
		retryInterval: opts.RetryInterval,
		log:           log.With("alphavantage"),
	}
}

type dailyResponse struct {
	ErrorMessage string                       `json:"Error Message"`
	Information  string                       `json:"Information"`
	Note         string                       `json:"Note"`
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
}

// Fetch returns daily price rows for symbol clipped to [start, end]
// inclusive, sorted ascending by date. Transport failures and throttle
// notes are retried on a fixed interval up to the retry ceiling; a symbol
// the provider does not know is ErrNoData and fails immediately.
func (c *Client) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]models.PricePoint, error) {
	var resp dailyResponse

	operation := func() error {
		resp = dailyResponse{}
		err := c.http.GetJSON(ctx, c.baseURL+"/query", map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": "full",
			"apikey":     c.apiKey,
		}, &resp)
		if err != nil {
			c.log.Warn("fetch attempt failed", applogger.Error(err))
			return err
		}
		if resp.ErrorMessage != "" {
			return backoff.Permanent(fmt.Errorf("%w: %s", models.ErrNoData, resp.ErrorMessage))
		}
		// throttle notes are transient, retry them
		if resp.Information != "" || resp.Note != "" {
			return fmt.Errorf("throttled: %s%s", resp.Information, resp.Note)
		}
		if len(resp.TimeSeries) == 0 {
			return backoff.Permanent(fmt.Errorf("%w: empty daily series for %s", models.ErrNoData, symbol))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, models.ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrSourceUnavailable, err)
	}

	points := make([]models.PricePoint, 0, len(resp.TimeSeries))
	for rawDate, fields := range resp.TimeSeries {
		d, ok := util.ParseDate(rawDate)
		if !ok {
			c.log.Warn("skipping row with bad date", applogger.String("date", rawDate))
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		p, err := parsePoint(d, fields)
		if err != nil {
			c.log.Warn("skipping unparseable row", applogger.String("date", rawDate), applogger.Error(err))
			continue
		}
		points = append(points, p)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	c.log.Info("fetched daily series",
		applogger.String("symbol", symbol),
		applogger.Int("rows", len(points)),
	)
	return points, nil
}

func parsePoint(d time.Time, fields map[string]string) (models.PricePoint, error) {
	p := models.PricePoint{Date: d}
	for key, dst := range map[string]*float64{
		"1. open":   &p.Open,
		"2. high":   &p.High,
		"3. low":    &p.Low,
		"4. close":  &p.Close,
		"5. volume": &p.Volume,
	} {
		raw, ok := fields[key]
		if !ok {
			return p, fmt.Errorf("missing field %q", key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, fmt.Errorf("field %q: %w", key, err)
		}
		*dst = v
	}
	return p, nil
}

var _ domsvc.MarketDataSource = (*Client)(nil)
