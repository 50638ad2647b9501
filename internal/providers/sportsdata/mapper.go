package sportsdata

import (
	"strings"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

func mapLineups(rows []lineupResponse) []lineups.Entry {
	entries := make([]lineups.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, lineups.Entry{
			HomeTeam:            strings.TrimSpace(r.HomeTeam),
			AwayTeam:            strings.TrimSpace(r.AwayTeam),
			HomeStartingPitcher: mapPitcher(r.HomeStartingPitcher),
			AwayStartingPitcher: mapPitcher(r.AwayStartingPitcher),
		})
	}
	return entries
}

func mapPitcher(p *pitcherResponse) *lineups.Pitcher {
	if p == nil {
		return nil
	}
	return &lineups.Pitcher{
		ID:        p.PlayerID,
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
	}
}

func mapPlayerSeasons(rows []playerSeasonResponse) []stats.PlayerSeason {
	out := make([]stats.PlayerSeason, 0, len(rows))
	for _, r := range rows {
		out = append(out, stats.PlayerSeason{PlayerID: r.PlayerID, EarnedRunAverage: r.EarnedRunAverage})
	}
	return out
}

func mapStandings(rows []standingResponse) []standings.TeamRecord {
	out := make([]standings.TeamRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, standings.TeamRecord{Key: strings.TrimSpace(r.Key), Wins: r.Wins, Losses: r.Losses})
	}
	return out
}
