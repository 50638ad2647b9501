package sportsdata

import "time"

const (
	providerName       = "sportsdata"
	defaultBaseURL     = "https://api.sportsdata.io/v3/mlb"
	defaultHTTPTimeout = 10 * time.Second
	subscriptionHeader = "Ocp-Apim-Subscription-Key"
)
