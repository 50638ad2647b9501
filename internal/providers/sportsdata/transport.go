package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// authMode selects how the API key travels with a request. The lineup
// endpoint takes it as a query parameter; stats and standings as a header.
type authMode int

const (
	authQuery authMode = iota
	authHeader
)

func (c *Client) getJSON(ctx context.Context, path string, auth authMode, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	switch auth {
	case authQuery:
		q := req.URL.Query()
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
	case authHeader:
		req.Header.Set(subscriptionHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, c.now()); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}
