package server

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/config"
	"github.com/preston-bernstein/mlb-matchup-service/internal/teststubs"
)

func TestProviderFactoryBuildsFixtureByDefault(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov, cleanup := factory.build(config.Config{Provider: "fixture"})
	defer cleanup()
	if prov == nil {
		t.Fatalf("expected provider")
	}
	games, err := prov.FetchOdds(context.Background())
	if err != nil || len(games) == 0 {
		t.Fatalf("expected fixture games, got %d (%v)", len(games), err)
	}
}

func TestProviderFactoryWrapRetriesAndCleansUp(t *testing.T) {
	stub := &teststubs.StubProvider{}
	factory := newProviderFactory(nil, nil)
	prov, cleanup := factory.wrap(config.Config{
		Providers: config.ProviderTuning{MinInterval: time.Millisecond, RetryAttempts: 2, RetryBackoff: time.Millisecond},
	}, stub)

	if _, err := prov.FetchStandings(context.Background(), 2025); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.Calls.Load(); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
	cleanup()
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Live", nil); got != "live" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
	if got := normalizeProviderName("", &teststubs.StubProvider{}); got != "*teststubs.stubprovider" {
		t.Fatalf("expected derived name, got %s", got)
	}
}
