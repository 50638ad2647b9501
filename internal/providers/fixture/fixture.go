package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// Provider returns a static slate of games, starters, stats and standings
// useful for local runs and bootstrapping. Start times are relative to now.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

type matchup struct {
	id        string
	offset    time.Duration
	away      string
	home      string
	awayCode  string
	homeCode  string
	book      string
	awayPrice odds.Price
	homePrice odds.Price
	awayP     *lineups.Pitcher
	homeP     *lineups.Pitcher
}

func pitcher(id int, first, last string) *lineups.Pitcher {
	return &lineups.Pitcher{ID: id, FirstName: first, LastName: last}
}

func era(v float64) *float64 { return &v }

var slate = []matchup{
	{
		id: "fixture-1", offset: 2 * time.Hour,
		away: "Boston Red Sox", home: "New York Yankees", awayCode: "BOS", homeCode: "NYY",
		book: "DraftKings", awayPrice: odds.PriceFromInt(140), homePrice: odds.PriceFromInt(-160),
		awayP: pitcher(1002, "Brayan", "Bello"), homeP: pitcher(1001, "Gerrit", "Cole"),
	},
	{
		id: "fixture-2", offset: 5 * time.Hour,
		away: "Los Angeles Dodgers", home: "San Francisco Giants", awayCode: "LAD", homeCode: "SF",
		book: "FanDuel", awayPrice: odds.PriceFromInt(-135), homePrice: odds.PriceFromInt(115),
		awayP: pitcher(1003, "Yoshinobu", "Yamamoto"), homeP: pitcher(1004, "Logan", "Webb"),
	},
	{
		id: "fixture-3", offset: 26 * time.Hour,
		away: "Detroit Tigers", home: "Chicago White Sox", awayCode: "DET", homeCode: "CHW",
		book: "BetMGM", awayPrice: odds.PriceFromInt(105), homePrice: odds.PriceFromInt(-125),
		awayP: pitcher(1005, "Tarik", "Skubal"), homeP: pitcher(1006, "Jonathan", "Cannon"),
	},
	{
		id: "fixture-4", offset: 29 * time.Hour,
		away: "Chicago Cubs", home: "Milwaukee Brewers", awayCode: "CHC", homeCode: "MIL",
		book: "Caesars", awayPrice: odds.TextPrice("EVEN"), homePrice: odds.PriceFromInt(-110),
		homeP: pitcher(1007, "Freddy", "Peralta"),
	},
}

func (p *Provider) start() time.Time {
	return p.now().UTC().Truncate(time.Hour)
}

// FetchOdds returns a deterministic set of upcoming games with one bookmaker each.
func (p *Provider) FetchOdds(ctx context.Context) ([]odds.Game, error) {
	_ = ctx
	start := p.start()

	games := make([]odds.Game, 0, len(slate))
	for _, m := range slate {
		games = append(games, odds.Game{
			ID:           m.id,
			HomeTeam:     m.home,
			AwayTeam:     m.away,
			CommenceTime: start.Add(m.offset).Format(timeutil.CommenceLayout),
			Bookmakers: []odds.Bookmaker{{
				Key:   "fixture",
				Title: m.book,
				Markets: []odds.Market{{
					Key: "h2h",
					Outcomes: []odds.Outcome{
						{Name: m.away, Price: m.awayPrice},
						{Name: m.home, Price: m.homePrice},
					},
				}},
			}},
		})
	}
	return games, nil
}

// FetchLineups returns starters for the fixture games falling on date, as
// observed in date's location.
func (p *Provider) FetchLineups(ctx context.Context, date time.Time) ([]lineups.Entry, error) {
	_ = ctx
	start := p.start()
	want := timeutil.FormatDate(date)

	var entries []lineups.Entry
	for _, m := range slate {
		day := timeutil.CalendarDate(start.Add(m.offset), date.Location())
		if timeutil.FormatDate(day) != want {
			continue
		}
		entries = append(entries, lineups.Entry{
			HomeTeam:            m.homeCode,
			AwayTeam:            m.awayCode,
			HomeStartingPitcher: m.homeP,
			AwayStartingPitcher: m.awayP,
		})
	}
	return entries, nil
}

// FetchPitchingStats returns season lines for the fixture starters. Peralta
// has no ERA on record.
func (p *Provider) FetchPitchingStats(ctx context.Context, season int) ([]stats.PlayerSeason, error) {
	_ = ctx
	_ = season
	return []stats.PlayerSeason{
		{PlayerID: 1001, EarnedRunAverage: era(2.50)},
		{PlayerID: 1002, EarnedRunAverage: era(4.10)},
		{PlayerID: 1003, EarnedRunAverage: era(2.90)},
		{PlayerID: 1004, EarnedRunAverage: era(3.40)},
		{PlayerID: 1005, EarnedRunAverage: era(2.10)},
		{PlayerID: 1006, EarnedRunAverage: era(5.05)},
		{PlayerID: 1007},
	}, nil
}

// FetchStandings returns records for the fixture teams.
func (p *Provider) FetchStandings(ctx context.Context, season int) ([]standings.TeamRecord, error) {
	_ = ctx
	_ = season
	return []standings.TeamRecord{
		{Key: "NYY", Wins: 90, Losses: 60},
		{Key: "BOS", Wins: 80, Losses: 70},
		{Key: "LAD", Wins: 95, Losses: 55},
		{Key: "SF", Wins: 74, Losses: 76},
		{Key: "DET", Wins: 88, Losses: 62},
		{Key: "CHW", Wins: 50, Losses: 100},
		{Key: "CHC", Wins: 78, Losses: 72},
		{Key: "MIL", Wins: 84, Losses: 66},
	}, nil
}
