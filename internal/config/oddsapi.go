package config

// OddsAPIConfig controls how we talk to The Odds API.
type OddsAPIConfig struct {
	BaseURL string
	APIKey  string
	Region  string
	Market  string
}

func loadOddsAPI() OddsAPIConfig {
	return OddsAPIConfig{
		BaseURL: envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
		Region:  envOrDefault(envOddsRegion, defaultOddsRegion),
		Market:  envOrDefault(envOddsMarket, defaultOddsMarket),
	}
}
