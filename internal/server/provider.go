package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-matchup-service/internal/config"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers/oddsapi"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers/sportsdata"
)

const (
	providerFixture = "fixture"
	providerLive    = "live"
)

// selectProvider picks the data source named by PROVIDER. "live" combines
// The Odds API with SportsDataIO for lineups, stats and standings.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerFixture, "":
		return fixture.New()
	case providerLive:
		odds := oddsapi.NewClient(oddsapi.Config{
			BaseURL: cfg.OddsAPI.BaseURL,
			APIKey:  cfg.OddsAPI.APIKey,
			Region:  cfg.OddsAPI.Region,
			Market:  cfg.OddsAPI.Market,
		})
		sd := sportsdata.NewClient(sportsdata.Config{
			BaseURL: cfg.SportsData.BaseURL,
			APIKey:  cfg.SportsData.APIKey,
		})
		if cfg.OddsAPI.APIKey == "" || cfg.SportsData.APIKey == "" {
			logging.Warn(logger, "live provider selected without api keys; upstream calls will be rejected")
		}
		return providers.Combine(odds, sd, sd, sd)
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
