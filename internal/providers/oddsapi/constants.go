package oddsapi

import "time"

const (
	providerName       = "oddsapi"
	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultSport       = "baseball_mlb"
	defaultRegion      = "us"
	defaultMarket      = "h2h"
	oddsFormat         = "american"
	defaultHTTPTimeout = 10 * time.Second
)
