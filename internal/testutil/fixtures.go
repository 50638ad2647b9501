package testutil

import (
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/teams"
)

// SampleMatchup returns an evaluated Red Sox at Yankees game with the provided id.
func SampleMatchup(id string) matchups.MatchupResult {
	start := time.Date(2025, 7, 4, 23, 5, 0, 0, time.UTC)
	return matchups.MatchupResult{
		GameID:          id,
		CommenceTime:    &start,
		TeamsIdentified: true,
		Away:            matchups.TeamLine{Team: teams.Team{Name: "Boston Red Sox", Code: "BOS"}, Record: "80-70", Wins: 80},
		Home:            matchups.TeamLine{Team: teams.Team{Name: "New York Yankees", Code: "NYY"}, Record: "90-60", Wins: 90},
		Bookmaker:       "DraftKings",
		HasOdds:         true,
		Outcomes: []matchups.OutcomeResult{
			{TeamName: "Boston Red Sox", Side: matchups.SideAway, Price: odds.PriceFromInt(140), Marker: matchups.MarkerUnderdog},
			{TeamName: "New York Yankees", Side: matchups.SideHome, Price: odds.PriceFromInt(-160), Marker: matchups.MarkerFavorite},
		},
	}
}

// SampleBoard builds a board with one date holding a sample matchup per id.
func SampleBoard(runID, date string, ids ...string) board.Board {
	games := make([]matchups.MatchupResult, 0, len(ids))
	for _, id := range ids {
		games = append(games, SampleMatchup(id))
	}
	return board.Board{
		RunID:       runID,
		GeneratedAt: time.Date(2025, 7, 4, 16, 0, 0, 0, time.UTC),
		Timezone:    "UTC",
		Dates:       []board.DateBoard{{Date: date, Games: games}},
	}
}
