package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

type combined struct {
	odds      OddsProvider
	lineups   LineupProvider
	stats     StatsProvider
	standings StandingsProvider
}

// Combine assembles a DataProvider from single-feed clients. A nil part
// answers with ErrProviderUnavailable.
func Combine(o OddsProvider, l LineupProvider, s StatsProvider, st StandingsProvider) DataProvider {
	return &combined{odds: o, lineups: l, stats: s, standings: st}
}

func (c *combined) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	if c.odds == nil {
		return nil, ErrProviderUnavailable
	}
	return c.odds.FetchOdds(ctx)
}

func (c *combined) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	if c.lineups == nil {
		return nil, ErrProviderUnavailable
	}
	return c.lineups.FetchLineups(ctx, date)
}

func (c *combined) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	if c.stats == nil {
		return nil, ErrProviderUnavailable
	}
	return c.stats.FetchPitchingStats(ctx, season)
}

func (c *combined) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	if c.standings == nil {
		return nil, ErrProviderUnavailable
	}
	return c.standings.FetchStandings(ctx, season)
}
