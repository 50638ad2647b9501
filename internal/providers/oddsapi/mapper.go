package oddsapi

import (
	"strings"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
)

func mapEvents(events []eventResponse) []odds.Game {
	games := make([]odds.Game, 0, len(events))
	for _, e := range events {
		games = append(games, mapEvent(e))
	}
	return games
}

func mapEvent(e eventResponse) odds.Game {
	game := odds.Game{
		ID:           e.ID,
		HomeTeam:     strings.TrimSpace(e.HomeTeam),
		AwayTeam:     strings.TrimSpace(e.AwayTeam),
		CommenceTime: strings.TrimSpace(e.CommenceTime),
	}
	if len(e.Bookmakers) > 0 {
		game.Bookmakers = make([]odds.Bookmaker, 0, len(e.Bookmakers))
		for _, b := range e.Bookmakers {
			game.Bookmakers = append(game.Bookmakers, mapBookmaker(b))
		}
	}
	return game
}

func mapBookmaker(b bookmakerResponse) odds.Bookmaker {
	book := odds.Bookmaker{Key: b.Key, Title: b.Title}
	for _, m := range b.Markets {
		market := odds.Market{Key: m.Key}
		for _, o := range m.Outcomes {
			market.Outcomes = append(market.Outcomes, odds.Outcome{Name: o.Name, Price: o.Price})
		}
		book.Markets = append(book.Markets, market)
	}
	return book
}
