package oddsapi

import "github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"

type eventResponse struct {
	ID           string              `json:"id"`
	SportKey     string              `json:"sport_key"`
	CommenceTime string              `json:"commence_time"`
	HomeTeam     string              `json:"home_team"`
	AwayTeam     string              `json:"away_team"`
	Bookmakers   []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Key        string           `json:"key"`
	Title      string           `json:"title"`
	LastUpdate string           `json:"last_update"`
	Markets    []marketResponse `json:"markets"`
}

type marketResponse struct {
	Key      string            `json:"key"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

// Price decodes numbers exactly and keeps anything else as text.
type outcomeResponse struct {
	Name  string     `json:"name"`
	Price odds.Price `json:"price"`
}
