package sportsdata

type lineupResponse struct {
	GameID              int              `json:"GameID"`
	HomeTeam            string           `json:"HomeTeam"`
	AwayTeam            string           `json:"AwayTeam"`
	HomeStartingPitcher *pitcherResponse `json:"HomeStartingPitcher"`
	AwayStartingPitcher *pitcherResponse `json:"AwayStartingPitcher"`
}

type pitcherResponse struct {
	PlayerID  int    `json:"PlayerID"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
}

type playerSeasonResponse struct {
	PlayerID         int      `json:"PlayerID"`
	Name             string   `json:"Name"`
	Team             string   `json:"Team"`
	EarnedRunAverage *float64 `json:"EarnedRunAverage"`
}

type standingResponse struct {
	Key    string `json:"Key"`
	City   string `json:"City"`
	Name   string `json:"Name"`
	Wins   int    `json:"Wins"`
	Losses int    `json:"Losses"`
}
