package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
)

// Config controls how the client reaches The Odds API.
type Config struct {
	BaseURL    string
	APIKey     string
	Sport      string
	Region     string
	Market     string
	HTTPClient *http.Client
}

// Client fetches upcoming MLB games with head-to-head odds from The Odds API (v4).
type Client struct {
	baseURL    string
	apiKey     string
	sport      string
	region     string
	market     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		sport:      orDefault(cfg.Sport, defaultSport),
		region:     orDefault(cfg.Region, defaultRegion),
		market:     orDefault(cfg.Market, defaultMarket),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchOdds retrieves every upcoming game the feed currently lists.
func (c *Client) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	if err := providers.CheckResponse(providerName, resp, c.now()); err != nil {
		return nil, err
	}

	var payload []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode odds: %w", providerName, err)
	}
	return mapEvents(payload), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	url := fmt.Sprintf("%s/sports/%s/odds/", c.baseURL, c.sport)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.region)
	q.Set("markets", c.market)
	q.Set("oddsFormat", oddsFormat)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}
