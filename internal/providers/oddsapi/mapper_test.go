package oddsapi

import (
	"encoding/json"
	"testing"
)

func TestMapEventTransformsFields(t *testing.T) {
	var e eventResponse
	raw := `{
		"id": "evt-9",
		"commence_time": " 2025-07-04T23:05:00Z ",
		"home_team": "Chicago Cubs ",
		"away_team": "Milwaukee Brewers",
		"bookmakers": [
			{"key": "fanduel", "title": "FanDuel", "markets": [
				{"key": "h2h", "outcomes": [
					{"name": "Milwaukee Brewers", "price": "EVEN"},
					{"name": "Chicago Cubs", "price": -105},
					{"name": "Draw"}
				]}
			]},
			{"key": "betmgm", "title": "BetMGM", "markets": []}
		]
	}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	game := mapEvent(e)
	if game.ID != "evt-9" || game.HomeTeam != "Chicago Cubs" || game.CommenceTime != "2025-07-04T23:05:00Z" {
		t.Fatalf("unexpected game %+v", game)
	}
	if len(game.Bookmakers) != 2 || game.Bookmakers[0].Key != "fanduel" {
		t.Fatalf("expected bookmakers in feed order, got %+v", game.Bookmakers)
	}
	outcomes := game.Bookmakers[0].Markets[0].Outcomes
	if outcomes[0].Price.Numeric() || outcomes[0].Price.String() != "EVEN" {
		t.Fatalf("expected text price kept verbatim, got %s", outcomes[0].Price)
	}
	if !outcomes[1].Price.Numeric() || outcomes[1].Price.Sign() != -1 {
		t.Fatalf("expected numeric favorite price, got %s", outcomes[1].Price)
	}
	if outcomes[2].Price.String() != "N/A" {
		t.Fatalf("expected missing price placeholder, got %s", outcomes[2].Price)
	}
}

func TestMapEventsWithoutBookmakers(t *testing.T) {
	games := mapEvents([]eventResponse{{ID: "a"}, {ID: "b"}})
	if len(games) != 2 || games[0].Bookmakers != nil {
		t.Fatalf("unexpected games %+v", games)
	}
}
