// Package newsapi implements the news source against the NewsAPI
// "everything" endpoint.
package newsapi

import (
	"context"
	"errors"
	"fmt"
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
		opts.BaseURL = "https://newsapi.org"
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
		log:           log.With("newsapi"),
	}
}

type everythingResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch returns articles matching query in the [start, end] window.
// Articles with unparseable timestamps are dropped, not surfaced as errors.
func (c *Client) Fetch(ctx context.Context, query string, start, end time.Time) ([]models.NewsItem, error) {
	var resp everythingResponse

	operation := func() error {
		resp = everythingResponse{}
		err := c.http.GetJSON(ctx, c.baseURL+"/v2/everything", map[string]string{
			"q":      query,
			"from":   start.Format(util.DateFormat),
			"to":     end.Format(util.DateFormat),
			"apiKey": c.apiKey,
		}, &resp)
		if err != nil {
			c.log.Warn("fetch attempt failed", applogger.Error(err))
			return err
		}
		if resp.Status != "ok" {
			return backoff.Permanent(fmt.Errorf("%w: %s", models.ErrNoData, resp.Message))
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

	items := make([]models.NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		ts, ok := util.ParseTimestamp(a.PublishedAt)
		if !ok {
			c.log.Warn("skipping article with bad timestamp", applogger.String("publishedAt", a.PublishedAt))
			continue
		}
		items = append(items, models.NewsItem{
			PublishedAt: ts,
			Title:       a.Title,
			Description: a.Description,
		})
	}

	c.log.Info("fetched articles",
		applogger.String("query", query),
		applogger.Int("rows", len(items)),
	)
	return items, nil
}

var _ domsvc.NewsSource = (*Client)(nil)
