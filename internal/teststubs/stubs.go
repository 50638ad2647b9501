package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// StubProvider is a test double for providers.DataProvider. Lineups and
// LineupErrs are keyed by YYYY-MM-DD.
type StubProvider struct {
	Games      []odds.Game
	Lineups    map[string][]lineups.Entry
	Pitching   []stats.PlayerSeason
	Standings  []standings.TeamRecord
	Err        error
	OddsErr    error
	StatsErr   error
	RecordsErr error
	LineupErrs map[string]error

	Calls  atomic.Int32
	Notify chan struct{}

	mu          sync.Mutex
	lineupDates []string
	seasons     []int
}

// FetchOdds returns configured games and error while tracking calls.
func (s *StubProvider) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	_ = ctx
	s.called()
	if err := s.firstErr(s.OddsErr); err != nil {
		return nil, err
	}
	return s.Games, nil
}

// FetchLineups returns the entries configured for date.
func (s *StubProvider) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	_ = ctx
	s.called()
	key := timeutil.FormatDate(date)
	s.mu.Lock()
	s.lineupDates = append(s.lineupDates, key)
	s.mu.Unlock()
	if err := s.firstErr(s.LineupErrs[key]); err != nil {
		return nil, err
	}
	return s.Lineups[key], nil
}

// FetchPitchingStats returns configured season stats.
func (s *StubProvider) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	_ = ctx
	s.called()
	s.recordSeason(season)
	if err := s.firstErr(s.StatsErr); err != nil {
		return nil, err
	}
	return s.Pitching, nil
}

// FetchStandings returns configured records.
func (s *StubProvider) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	_ = ctx
	s.called()
	s.recordSeason(season)
	if err := s.firstErr(s.RecordsErr); err != nil {
		return nil, err
	}
	return s.Standings, nil
}

// LineupDates returns the dates lineups were requested for, in call order.
func (s *StubProvider) LineupDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lineupDates...)
}

// Seasons returns the seasons requested from stats and standings.
func (s *StubProvider) Seasons() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.seasons...)
}

func (s *StubProvider) called() {
	s.mu.Lock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)
}

func (s *StubProvider) recordSeason(season int) {
	s.mu.Lock()
	s.seasons = append(s.seasons, season)
	s.mu.Unlock()
}

func (s *StubProvider) firstErr(specific error) error {
	if specific != nil {
		return specific
	}
	return s.Err
}
