package config

// Config holds runtime configuration for the server and the board CLI.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Providers    ProviderTuning
	AdminToken   string
	CORSOrigins  []string
	Log          LogConfig
	Display      DisplayConfig
	OddsAPI      OddsAPIConfig
	SportsData   SportsDataConfig
	Metrics      MetricsConfig
}

// ProviderTuning controls the shared wrappers around live providers.
type ProviderTuning struct {
	MinInterval   Duration
	RetryAttempts int
	RetryBackoff  Duration
	// MaxRetryAfter caps how long a rate-limited call waits before retrying.
	MaxRetryAfter Duration
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Providers: ProviderTuning{
			MinInterval:   durationEnvOrDefault(envProviderInterval, defaultProviderInterval),
			RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
			MaxRetryAfter: durationEnvOrDefault(envMaxRetryAfter, defaultMaxRetryAfter),
		},
		AdminToken:  envOrDefault(envAdminToken, ""),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Display:    loadDisplay(),
		OddsAPI:    loadOddsAPI(),
		SportsData: loadSportsData(),
		Metrics:    loadMetrics(),
	}
}
