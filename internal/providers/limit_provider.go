package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

const (
	defaultMinInterval  = 200 * time.Millisecond
	rateLimitedProvName = "rate-limited"
)

// rateLimitedProvider wraps a DataProvider and spaces upstream calls at least
// interval apart, shared across all feeds.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	if err := p.wait(ctx, "odds"); err != nil {
		return nil, err
	}
	return p.next.FetchOdds(ctx)
}

func (p *rateLimitedProvider) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	if err := p.wait(ctx, "lineups", slog.String(logging.FieldDate, timeutil.FormatDate(date))); err != nil {
		return nil, err
	}
	return p.next.FetchLineups(ctx, date)
}

func (p *rateLimitedProvider) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	if err := p.wait(ctx, "pitching_stats"); err != nil {
		return nil, err
	}
	return p.next.FetchPitchingStats(ctx, season)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, season)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string, args ...any) error {
	args = append(args, slog.String("op", op))
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedProvName, "provider unavailable", args...)
		return ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedProvName, "rate-limited fetch canceled", args...)
		return ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedProvName, "rate-limited provider fetch", args...)
	return nil
}
