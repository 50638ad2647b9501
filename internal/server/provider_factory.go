package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-matchup-service/internal/config"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
	"github.com/preston-bernstein/mlb-matchup-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped provider and a cleanup that stops the limiter ticker.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, func()) {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) (providers.DataProvider, func()) {
	limited := providers.NewRateLimitedProvider(base, cfg.Providers.MinInterval, f.logger)
	cleanup := func() {
		if c, ok := limited.(interface{ Close() }); ok {
			c.Close()
		}
	}
	wrapped := providers.NewRetryingProvider(limited, f.logger, f.metrics,
		normalizeProviderName(cfg.Provider, base), cfg.Providers.RetryAttempts, cfg.Providers.RetryBackoff, cfg.Providers.MaxRetryAfter)
	return wrapped, cleanup
}
