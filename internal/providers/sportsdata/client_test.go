package sportsdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	c := NewClient(Config{
		BaseURL:    "http://example.com/v3/mlb/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})
	c.now = func() time.Time { return time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestFetchLineupsUsesFeedDateAndQueryKey(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `[
			{
				"GameID": 1,
				"HomeTeam": "NYY",
				"AwayTeam": "BOS",
				"HomeStartingPitcher": {"PlayerID": 10, "FirstName": "Gerrit", "LastName": "Cole"},
				"AwayStartingPitcher": null
			}
		]`), nil
	})

	entries, err := client.FetchLineups(context.Background(), time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.Path != "/v3/mlb/projections/json/StartingLineupsByDate/2025-JUL-04" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	if captured.URL.Query().Get("key") != "secret" {
		t.Fatalf("expected key query param, got %s", captured.URL.RawQuery)
	}
	if captured.Header.Get(subscriptionHeader) != "" {
		t.Fatal("expected no subscription header on lineup call")
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.HomeTeam != "NYY" || entry.AwayTeam != "BOS" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.HomeStartingPitcher == nil || entry.HomeStartingPitcher.ID != 10 || entry.HomeStartingPitcher.LastName != "Cole" {
		t.Fatalf("unexpected home starter %+v", entry.HomeStartingPitcher)
	}
	if entry.AwayStartingPitcher != nil {
		t.Fatalf("expected missing away starter, got %+v", entry.AwayStartingPitcher)
	}
}

func TestFetchPitchingStatsKeepsNullERA(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `[
			{"PlayerID": 10, "Name": "Gerrit Cole", "EarnedRunAverage": 2.95},
			{"PlayerID": 11, "Name": "Rookie", "EarnedRunAverage": null},
			{"PlayerID": 12, "Name": "Opener", "EarnedRunAverage": 0}
		]`), nil
	})

	rows, err := client.FetchPitchingStats(context.Background(), 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.Path != "/v3/mlb/stats/json/PlayerSeasonStats/2025" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	if captured.Header.Get(subscriptionHeader) != "secret" || captured.URL.Query().Get("key") != "" {
		t.Fatalf("expected header auth only, got header=%q query=%q", captured.Header.Get(subscriptionHeader), captured.URL.RawQuery)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].EarnedRunAverage == nil || *rows[0].EarnedRunAverage != 2.95 {
		t.Fatalf("unexpected era %+v", rows[0])
	}
	if rows[1].EarnedRunAverage != nil {
		t.Fatal("expected null era to stay nil")
	}
	if rows[2].EarnedRunAverage == nil || *rows[2].EarnedRunAverage != 0 {
		t.Fatal("expected zero era to be kept as a value")
	}
}

func TestFetchStandings(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `[
			{"Key": "NYY", "City": "New York", "Name": "Yankees", "Wins": 90, "Losses": 60},
			{"Key": "BOS", "Wins": 80, "Losses": 70}
		]`), nil
	})

	rows, err := client.FetchStandings(context.Background(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.Path != "/v3/mlb/scores/json/Standings/2024" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	if captured.Header.Get(subscriptionHeader) != "secret" {
		t.Fatal("expected subscription header")
	}
	if len(rows) != 2 || rows[0].Key != "NYY" || rows[0].Wins != 90 || rows[1].Losses != 70 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		_ = req
		return jsonResponse(http.StatusNotFound, "no games"), nil
	})
	var statusErr *providers.StatusError
	if _, err := client.FetchLineups(ctx, time.Now()); !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}

	client = newTestClient(func(req *http.Request) (*http.Response, error) {
		_ = req
		return jsonResponse(http.StatusOK, "{not json"), nil
	})
	if _, err := client.FetchStandings(ctx, 2025); err == nil {
		t.Fatal("expected decode error")
	}

	boom := errors.New("connection reset")
	client = newTestClient(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, boom
	})
	if _, err := client.FetchPitchingStats(ctx, 2025); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}

	client = newTestClient(func(req *http.Request) (*http.Response, error) {
		_ = req
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "2")
		return resp, nil
	})
	rl, ok := providers.AsRateLimitError(func() error { _, err := client.FetchStandings(ctx, 2025); return err }())
	if !ok || rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected rate limit with retry-after, got %+v", rl)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok || httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default http client with timeout")
	}
	if got := normalizeBaseURL("https://x.test/"); got != "https://x.test" {
		t.Fatalf("unexpected normalized url %s", got)
	}
}
