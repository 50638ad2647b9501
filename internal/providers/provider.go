package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

// OddsProvider fetches upcoming games with their bookmaker odds.
type OddsProvider interface {
	FetchOdds(ctx context.Context) ([]odds.Game, error)
}

// LineupProvider fetches the probable starters for one calendar date.
type LineupProvider interface {
	FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error)
}

// StatsProvider fetches season pitching stats keyed by player.
type StatsProvider interface {
	FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error)
}

// StandingsProvider fetches season win/loss records keyed by team code.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	OddsProvider
	LineupProvider
	StatsProvider
	StandingsProvider
}
