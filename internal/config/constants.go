package config

import "time"

const (
	envPort              = "PORT"
	envPollInterval      = "POLL_INTERVAL"
	envProvider          = "PROVIDER"
	envProviderInterval  = "PROVIDER_MIN_INTERVAL"
	envRetryAttempts     = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff      = "PROVIDER_RETRY_BACKOFF"
	envMaxRetryAfter     = "PROVIDER_MAX_RETRY_AFTER"
	envAdminToken        = "ADMIN_TOKEN"
	envCORSOrigins       = "CORS_ALLOWED_ORIGINS"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
	envDisplayTimezone   = "DISPLAY_TIMEZONE"
	envDisplayDays       = "DISPLAY_DAYS"
	envSeason            = "MLB_SEASON"
	envTeamsFile         = "TEAMS_FILE"
	envOddsBaseURL       = "ODDS_API_BASE_URL"
	envOddsAPIKey        = "ODDS_API_KEY"
	envOddsRegion        = "ODDS_API_REGION"
	envOddsMarket        = "ODDS_API_MARKET"
	envSportsDataBaseURL = "SPORTSDATA_BASE_URL"
	envSportsDataAPIKey  = "SPORTSDATA_API_KEY"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The odds feed bills per request; ten minutes keeps a full day under the free quota.
	defaultPollInterval     = 10 * Duration(time.Minute)
	defaultProvider         = "fixture"
	defaultProviderInterval = 200 * Duration(time.Millisecond)
	defaultRetryAttempts    = 3
	defaultRetryBackoff     = 200 * Duration(time.Millisecond)
	defaultMaxRetryAfter    = 5 * Duration(time.Second)
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultDisplayTimezone  = "America/New_York"
	defaultDisplayDays      = 2
	defaultMetricsPort      = "9090"
	defaultServiceName      = "mlb-matchup-service"

	defaultOddsBaseURL       = "https://api.the-odds-api.com/v4"
	defaultOddsRegion        = "us"
	defaultOddsMarket        = "h2h"
	defaultSportsDataBaseURL = "https://api.sportsdata.io/v3/mlb"
)
