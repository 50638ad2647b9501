package config

// SportsDataConfig controls how we talk to SportsDataIO.
type SportsDataConfig struct {
	BaseURL string
	APIKey  string
}

func loadSportsData() SportsDataConfig {
	return SportsDataConfig{
		BaseURL: envOrDefault(envSportsDataBaseURL, defaultSportsDataBaseURL),
		APIKey:  envOrDefault(envSportsDataAPIKey, ""),
	}
}
