package sportsdata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// Config controls how the client reaches SportsDataIO.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches starting lineups, season pitching stats and standings from
// the SportsDataIO MLB API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a SportsDataIO client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchLineups retrieves the probable starters for date's games.
func (c *Client) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	var rows []lineupResponse
	path := "/projections/json/StartingLineupsByDate/" + timeutil.LineupDate(date)
	if err := c.getJSON(ctx, path, authQuery, &rows); err != nil {
		return nil, err
	}
	return mapLineups(rows), nil
}

// FetchPitchingStats retrieves every player's season line.
func (c *Client) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	var rows []playerSeasonResponse
	path := fmt.Sprintf("/stats/json/PlayerSeasonStats/%d", season)
	if err := c.getJSON(ctx, path, authHeader, &rows); err != nil {
		return nil, err
	}
	return mapPlayerSeasons(rows), nil
}

// FetchStandings retrieves season win/loss records.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	var rows []standingResponse
	path := fmt.Sprintf("/scores/json/Standings/%d", season)
	if err := c.getJSON(ctx, path, authHeader, &rows); err != nil {
		return nil, err
	}
	return mapStandings(rows), nil
}

func checkResponse(resp *http.Response, now time.Time) error {
	return providers.CheckResponse(providerName, resp, now)
}
