package fixture

import (
	"context"
	"testing"
	"time"
)

func TestFetchOddsReturnsDeterministicGames(t *testing.T) {
	fixed := time.Date(2025, 7, 4, 12, 30, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	games, err := p.FetchOdds(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != len(slate) {
		t.Fatalf("expected %d games, got %d", len(slate), len(games))
	}

	first := games[0]
	if first.ID != "fixture-1" || first.HomeTeam != "New York Yankees" {
		t.Fatalf("unexpected first game: %+v", first)
	}
	if first.CommenceTime != "2025-07-04T14:00:00Z" {
		t.Fatalf("unexpected start time %s", first.CommenceTime)
	}
	book, ok := first.PrimaryBookmaker()
	if !ok || book.Title != "DraftKings" || len(book.Markets[0].Outcomes) != 2 {
		t.Fatalf("unexpected bookmaker %+v", book)
	}
	if games[3].Bookmakers[0].Markets[0].Outcomes[0].Price.Numeric() {
		t.Fatal("expected a text price in the slate")
	}
}

func TestFetchLineupsFiltersByDate(t *testing.T) {
	fixed := time.Date(2025, 7, 4, 12, 30, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	today, err := p.FetchLineups(context.Background(), time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(today) != 2 || today[0].HomeTeam != "NYY" || today[1].HomeTeam != "SF" {
		t.Fatalf("unexpected lineups for today %+v", today)
	}

	tomorrow, _ := p.FetchLineups(context.Background(), time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC))
	if len(tomorrow) != 2 || tomorrow[1].AwayStartingPitcher != nil {
		t.Fatalf("expected Cubs starter to be unannounced, got %+v", tomorrow)
	}

	none, _ := p.FetchLineups(context.Background(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	if len(none) != 0 {
		t.Fatalf("expected no lineups off-slate, got %+v", none)
	}
}

func TestStatsAndStandingsCoverSlate(t *testing.T) {
	p := New()
	rows, err := p.FetchPitchingStats(context.Background(), 2025)
	if err != nil || len(rows) != 7 {
		t.Fatalf("unexpected stats %v %v", rows, err)
	}
	if rows[6].EarnedRunAverage != nil {
		t.Fatal("expected one starter without an ERA")
	}

	records, err := p.FetchStandings(context.Background(), 2025)
	if err != nil || len(records) != 8 {
		t.Fatalf("unexpected standings %v %v", records, err)
	}
	seen := map[string]bool{}
	for _, m := range slate {
		seen[m.awayCode], seen[m.homeCode] = true, true
	}
	for _, r := range records {
		if !seen[r.Key] {
			t.Fatalf("standings row %s has no fixture game", r.Key)
		}
	}
}

func TestNewCreatesProvider(t *testing.T) {
	p := New()
	if p == nil || p.now == nil {
		t.Fatalf("expected provider with now set")
	}
}
