package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/config"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
	"github.com/preston-bernstein/mlb-matchup-service/internal/store"
)

// NewBoardService wires the configured provider, team directory and an
// in-memory store into a board service. The returned cleanup releases
// provider resources.
func NewBoardService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*board.Service, func()) {
	provider, cleanup := newProviderFactory(logger, recorder).build(cfg)
	svc, _ := buildBoardService(cfg, logger, recorder, provider)
	return svc, cleanup
}

func buildBoardService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) (*board.Service, *store.MemoryStore) {
	loc, err := cfg.Display.Location()
	if err != nil {
		logging.Warn(logger, "display timezone unavailable, grouping dates in UTC", logging.FieldErr, err)
	}
	memoryStore := store.NewMemoryStore()
	svc := board.NewService(provider, loadTeams(cfg, logger), memoryStore, logger, recorder, board.Config{
		Location: loc,
		Days:     cfg.Display.Days,
		Season:   cfg.Display.Season,
	})
	return svc, memoryStore
}

// loadTeams reads TEAMS_FILE when set; a missing or invalid file falls back
// to the embedded directory.
func loadTeams(cfg config.Config, logger *slog.Logger) *teams.Directory {
	if cfg.Display.TeamsFile == "" {
		return teams.DefaultDirectory()
	}
	dir, err := teams.LoadDirectory(cfg.Display.TeamsFile)
	if err != nil {
		logging.Error(logger, "team directory load failed, using embedded table", err, "path", cfg.Display.TeamsFile)
		return teams.DefaultDirectory()
	}
	logging.Info(logger, "team directory loaded", "path", cfg.Display.TeamsFile, logging.FieldCount, dir.Len())
	return dir
}
