package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultMaxRetryAfter = 5 * time.Second
	fallbackProviderName = "provider"
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and
// records every attempt.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	// Rate limits asking for a longer wait than this are not retried.
	maxRetryAfter time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts,
// backoff or maxRetryAfter are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, backoff, maxRetryAfter time.Duration) DataProvider {
	return NewRetryingProviderWithRNG(inner, logger, rec, name, nil, maxAttempts, backoff, maxRetryAfter)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an explicit jitter source.
func NewRetryingProviderWithRNG(inner DataProvider, logger *slog.Logger, rec *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff, maxRetryAfter time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if maxRetryAfter <= 0 {
		maxRetryAfter = defaultMaxRetryAfter
	}
	if name == "" {
		name = fallbackProviderName
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:         inner,
		logger:        logger,
		metrics:       rec,
		providerName:  name,
		maxAttempts:   maxAttempts,
		rng:           rng,
		maxRetryAfter: maxRetryAfter,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	return withRetry(ctx, r, "odds", func(ctx context.Context) ([]odds.Game, error) {
		return r.inner.FetchOdds(ctx)
	})
}

func (r *retryingProvider) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	return withRetry(ctx, r, "lineups", func(ctx context.Context) ([]lineups.Entry, error) {
		return r.inner.FetchLineups(ctx, date)
	}, slog.String(logging.FieldDate, timeutil.FormatDate(date)))
}

func (r *retryingProvider) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	return withRetry(ctx, r, "pitching_stats", func(ctx context.Context) ([]stats.PlayerSeason, error) {
		return r.inner.FetchPitchingStats(ctx, season)
	}, slog.Int(logging.FieldSeason, season))
}

func (r *retryingProvider) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	return withRetry(ctx, r, "standings", func(ctx context.Context) ([]standings.TeamRecord, error) {
		return r.inner.FetchStandings(ctx, season)
	}, slog.Int(logging.FieldSeason, season))
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error), attrs ...any) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}
	attrs = append(attrs, slog.String("op", op))

	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		attempts = attempt
		start := time.Now()
		out, err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if attempt == r.maxAttempts || !retryable(err) {
			break
		}
		delay, ok := r.computeDelay(err, attempt)
		if !ok {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "rate limit wait exceeds cap, giving up",
				append(attrs, logging.FieldAttempt, attempt, "max_retry_after_ms", r.maxRetryAfter.Milliseconds(), logging.FieldErr, err)...)
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			append(attrs, logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts, logging.FieldErr, err)...)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
		append(attrs, "attempts", attempts, logging.FieldErr, lastErr)...)
	return zero, lastErr
}

// computeDelay honors Retry-After on rate limits up to maxRetryAfter and
// otherwise jitters the backoff into [base/2, base]. ok is false when the
// requested wait is over the cap.
func (r *retryingProvider) computeDelay(err error, attempt int) (time.Duration, bool) {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		if rlErr.RetryAfter > r.maxRetryAfter {
			return 0, false
		}
		return rlErr.RetryAfter, true
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0, true
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(base-half) + 1))
	r.rngMu.Unlock()
	return half + jitter, true
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}
