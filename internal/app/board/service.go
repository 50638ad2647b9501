package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/schedule"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// ErrPrerequisite marks a build that could not start because odds, season
// stats or standings were unavailable. Nothing is rendered for such a run.
var ErrPrerequisite = errors.New("board prerequisite unavailable")

// Store holds the most recent board.
type Store interface {
	SetBoard(b Board)
	Board() (Board, bool)
	DateBoard(date string) (DateBoard, bool)
	Game(date, id string) (matchups.MatchupResult, bool)
}

// Config tunes a board build.
type Config struct {
	Location *time.Location
	Days     int
	Season   int
}

// Service builds boards from the data feeds and keeps the latest one.
type Service struct {
	provider providers.DataProvider
	teams    matchups.TeamResolver
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	loc      *time.Location
	days     int
	season   int
	now      func() time.Time
	newRunID func() string
}

// NewService constructs a Service. A nil location is UTC, days <= 0 uses the
// schedule default and season 0 means the current year.
func NewService(provider providers.DataProvider, teams matchups.TeamResolver, store Store, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	days := cfg.Days
	if days <= 0 {
		days = schedule.DefaultDays
	}
	return &Service{
		provider: provider,
		teams:    teams,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		loc:      loc,
		days:     days,
		season:   cfg.Season,
		now:      time.Now,
		newRunID: func() string { return uuid.NewString() },
	}
}

// Build runs one full evaluation pass. Odds, ERA and standings failures abort
// the run with ErrPrerequisite; a lineup failure only degrades its date.
func (s *Service) Build(ctx context.Context) (b Board, err error) {
	start := time.Now()
	runID := s.newRunID()
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(logging.FieldRunID, runID)
		ctx = logging.WithLogger(ctx, logger)
	}
	defer func() {
		s.metrics.RecordBoardBuild(time.Since(start), err)
	}()

	if s.provider == nil {
		return Board{}, fmt.Errorf("%w: %w", ErrPrerequisite, providers.ErrProviderUnavailable)
	}

	now := s.now()
	season := s.seasonFor(now)

	games, err := s.provider.FetchOdds(ctx)
	if err != nil {
		return Board{}, s.prerequisiteFailed(logger, "odds", err)
	}
	eraRows, err := s.provider.FetchPitchingStats(ctx, season)
	if err != nil {
		return Board{}, s.prerequisiteFailed(logger, "pitching stats", err)
	}
	recordRows, err := s.provider.FetchStandings(ctx, season)
	if err != nil {
		return Board{}, s.prerequisiteFailed(logger, "standings", err)
	}

	records := standings.NewStore(recordRows)
	eras := stats.NewEraTable(eraRows)
	logging.Debug(logger, "board inputs loaded",
		"games", len(games),
		"eras", eras.Len(),
		"records", records.Len(),
		logging.FieldSeason, season,
	)
	evaluator := matchups.NewEvaluator(s.teams, records, eras)
	groups := schedule.Group(games, now, s.loc, s.days)

	b = Board{
		RunID:       runID,
		GeneratedAt: now.UTC(),
		Timezone:    s.loc.String(),
		Dates:       make([]DateBoard, 0, len(groups)),
	}
	for _, group := range groups {
		db, err := s.buildDate(ctx, logger, evaluator, group)
		if err != nil {
			return Board{}, err
		}
		b.Dates = append(b.Dates, db)
	}

	logging.Info(logger, "board built",
		logging.FieldCount, b.GameCount(),
		"dates", len(b.Dates),
		logging.FieldSeason, season,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return b, nil
}

func (s *Service) buildDate(ctx context.Context, logger *slog.Logger, evaluator *matchups.Evaluator, group schedule.DateGroup) (DateBoard, error) {
	db := DateBoard{Date: group.Key}

	entries, err := s.provider.FetchLineups(ctx, group.Date)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return DateBoard{}, ctxErr
		}
		db.LineupsUnavailable = true
		db.LineupError = fmt.Sprintf("Failed to fetch starting lineups for %s: %v", group.Key, err)
		s.metrics.RecordLineupFallback()
		logging.Warn(logger, "lineups unavailable", logging.FieldDate, group.Key, logging.FieldErr, err)
		entries = nil
	}

	index := lineups.NewIndex(entries)
	logging.Debug(logger, "lineups indexed", logging.FieldDate, group.Key, logging.FieldCount, index.Len())
	db.Games = evaluator.EvaluateAll(group.Games, index)
	for _, g := range db.Games {
		for _, o := range g.Outcomes {
			if o.Advisory != matchups.AdvisoryNone {
				s.metrics.RecordAdvisory(string(o.Advisory))
			}
		}
	}
	return db, nil
}

func (s *Service) prerequisiteFailed(logger *slog.Logger, feed string, err error) error {
	logging.Error(logger, "board prerequisite fetch failed", err, "feed", feed)
	return fmt.Errorf("%w: fetch %s: %w", ErrPrerequisite, feed, err)
}

func (s *Service) seasonFor(now time.Time) int {
	if s.season > 0 {
		return s.season
	}
	return now.In(s.loc).Year()
}

// Refresh builds a new board and publishes it to the store. On failure the
// previously published board stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	b, err := s.Build(ctx)
	if err != nil {
		return err
	}
	if s.store != nil {
		s.store.SetBoard(b)
	}
	return nil
}

// Current returns the latest published board.
func (s *Service) Current() (Board, bool) {
	if s.store == nil {
		return Board{}, false
	}
	return s.store.Board()
}

// DateBoard returns the latest board's entry for a YYYY-MM-DD date.
func (s *Service) DateBoard(date string) (DateBoard, bool) {
	if s.store == nil {
		return DateBoard{}, false
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return DateBoard{}, false
	}
	return s.store.DateBoard(date)
}

// Game returns one evaluated game from the latest board.
func (s *Service) Game(date, id string) (matchups.MatchupResult, bool) {
	if s.store == nil {
		return matchups.MatchupResult{}, false
	}
	return s.store.Game(date, id)
}

// Location returns the display time zone.
func (s *Service) Location() *time.Location {
	return s.loc
}
