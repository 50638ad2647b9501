package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
	"github.com/preston-bernstein/mlb-matchup-service/internal/teststubs"
)

type flakeyProvider struct {
	teststubs.StubProvider
	failures int
	calls    int
	failErr  error
}

func (f *flakeyProvider) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		if f.failErr != nil {
			return nil, f.failErr
		}
		return nil, errors.New("boom")
	}
	return []odds.Game{{ID: "ok"}}, nil
}

func (f *flakeyProvider) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []standings.TeamRecord{{Key: "NYY", Wins: season}}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, 1*time.Millisecond, 0)

	games, err := rp.FetchOdds(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(games) != 1 || games[0].ID != "ok" {
		t.Fatalf("unexpected games %+v", games)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderRetriesEveryFeed(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond, 0)

	records, err := rp.FetchStandings(context.Background(), 2025)
	if err != nil || len(records) != 1 || records[0].Wins != 2025 {
		t.Fatalf("expected standings after retry, got %v %v", records, err)
	}

	if _, err := rp.FetchLineups(context.Background(), time.Now()); err != nil {
		t.Fatalf("expected lineups passthrough, got %v", err)
	}
	if _, err := rp.FetchPitchingStats(context.Background(), 2025); err != nil {
		t.Fatalf("expected stats passthrough, got %v", err)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, 1*time.Millisecond, 0)

	_, err := rp.FetchOdds(context.Background())
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryClientErrors(t *testing.T) {
	fp := &flakeyProvider{failures: 5, failErr: &StatusError{Provider: "p", StatusCode: 401}}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Millisecond, 0)

	_, err := rp.FetchOdds(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchOdds(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Hour, 0).(*retryingProvider)

	calls := 0
	rp.backoffFn = func(attempt int) time.Duration {
		calls++
		return 0
	}

	_, _ = rp.FetchOdds(context.Background())

	if calls == 0 {
		t.Fatalf("expected custom backoff to be invoked")
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, failErr: &RateLimitError{Provider: "test", StatusCode: 429}}
	rp := NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond, 0).(*retryingProvider)
	rp.backoffFn = func(attempt int) time.Duration {
		_ = attempt
		return 0
	}

	games, err := rp.FetchOdds(context.Background())
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if len(games) != 1 || games[0].ID != "ok" {
		t.Fatalf("unexpected games %+v", games)
	}

	if got := rec.RateLimitHits(rp.providerName); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls(rp.providerName); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors(rp.providerName); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
}

func TestRetryingProviderDelaySelection(t *testing.T) {
	rp := NewRetryingProviderWithRNG(&flakeyProvider{}, nil, metrics.NewRecorder(), "rl", rand.New(rand.NewSource(1)), 2, time.Millisecond, 5*time.Second).(*retryingProvider)
	rp.backoffFn = func(attempt int) time.Duration {
		_ = attempt
		return 50 * time.Millisecond
	}

	if delay, ok := rp.computeDelay(&RateLimitError{RetryAfter: 3 * time.Second}, 1); !ok || delay != 3*time.Second {
		t.Fatalf("expected retry-after delay 3s, got %s (ok=%v)", delay, ok)
	}
	if _, ok := rp.computeDelay(&RateLimitError{RetryAfter: 6 * time.Second}, 1); ok {
		t.Fatal("expected retry-after over the cap to be rejected")
	}

	for i := 0; i < 20; i++ {
		delay, ok := rp.computeDelay(errors.New("boom"), 1)
		if !ok || delay < 25*time.Millisecond || delay > 50*time.Millisecond {
			t.Fatalf("expected jittered delay between 25ms and 50ms, got %s", delay)
		}
	}

	rp.backoffFn = func(int) time.Duration { return 0 }
	if delay, _ := rp.computeDelay(errors.New("boom"), 1); delay != 0 {
		t.Fatalf("expected zero delay for zero backoff, got %s", delay)
	}
}

type rateLimitedLineups struct {
	teststubs.StubProvider
	retryAfter time.Duration
}

func (r *rateLimitedLineups) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	_, _ = r.StubProvider.FetchLineups(ctx, date)
	return nil, &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: r.retryAfter}
}

func TestRetryingProviderGivesUpOnLongRetryAfter(t *testing.T) {
	rec := metrics.NewRecorder()
	inner := &rateLimitedLineups{retryAfter: 6 * time.Hour}
	rp := NewRetryingProvider(inner, nil, rec, "rl", 3, time.Millisecond, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, err := rp.FetchLineups(ctx, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	elapsed := time.Since(start)

	rlErr, ok := AsRateLimitError(err)
	if !ok || rlErr.RetryAfter != 6*time.Hour {
		t.Fatalf("expected the rate limit error back, got %v", err)
	}
	if got := inner.Calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("expected an immediate return, took %s", elapsed)
	}
	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected rate limit recorded, got %d", got)
	}
}

func TestRetryingProviderWaitsForShortRetryAfter(t *testing.T) {
	fp := &flakeyProvider{failures: 1, failErr: &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: 5 * time.Millisecond}}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "rl", 2, time.Millisecond, time.Second)

	if _, err := rp.FetchOdds(context.Background()); err != nil {
		t.Fatalf("expected success after a short wait, got %v", err)
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", fp.calls)
	}
}

func TestNewRetryingProviderWithNilProviderSetsFallbackName(t *testing.T) {
	rp := NewRetryingProviderWithRNG(nil, nil, metrics.NewRecorder(), "", nil, 0, 0, 0).(*retryingProvider)
	if rp.providerName != "provider" {
		t.Fatalf("expected fallback provider name, got %s", rp.providerName)
	}
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if rp.backoffFn(1) != defaultBackoff {
		t.Fatalf("expected default backoff")
	}
	if rp.maxRetryAfter != defaultMaxRetryAfter {
		t.Fatalf("expected default retry-after cap, got %s", rp.maxRetryAfter)
	}
	if _, err := rp.FetchOdds(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("boom"), true},
		{&RateLimitError{StatusCode: 429}, true},
		{&StatusError{StatusCode: 503}, true},
		{&StatusError{StatusCode: 404}, false},
		{context.Canceled, false},
		{ErrProviderUnavailable, false},
	}
	for _, tc := range cases {
		if got := retryable(tc.err); got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.err, tc.want, got)
		}
	}
}
