package matchups

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// unknownOutcome names outcomes the feed left unnamed.
const unknownOutcome = "Unknown"

// TeamResolver maps a full team name to its canonical code.
type TeamResolver interface {
	Resolve(fullName string) string
}

// RecordLookup returns a "W-L" record string for a team code.
type RecordLookup interface {
	RecordFor(code string) string
}

// EraLookup returns a pitcher's season ERA.
type EraLookup interface {
	EraOf(playerID int) stats.ERA
}

// PitcherLookup resolves a team's probable starter for the game's date.
type PitcherLookup interface {
	PitcherFor(code string) (lineups.Pitcher, bool)
}

// Evaluator joins odds, lineups, ERAs and standings into matchup results. It
// holds only read-only lookups, so results depend solely on the inputs.
type Evaluator struct {
	teams   TeamResolver
	records RecordLookup
	eras    EraLookup
}

// NewEvaluator constructs an Evaluator over run-wide lookups.
func NewEvaluator(teams TeamResolver, records RecordLookup, eras EraLookup) *Evaluator {
	return &Evaluator{teams: teams, records: records, eras: eras}
}

// EvaluateAll evaluates games in order against one date's lineup.
func (e *Evaluator) EvaluateAll(games []odds.Game, lineup PitcherLookup) []MatchupResult {
	results := make([]MatchupResult, 0, len(games))
	for _, g := range games {
		results = append(results, e.Evaluate(g, lineup))
	}
	return results
}

// Evaluate resolves one game. Missing data degrades to placeholders; it never
// fails.
func (e *Evaluator) Evaluate(game odds.Game, lineup PitcherLookup) MatchupResult {
	res := MatchupResult{
		GameID:          game.ID,
		TeamsIdentified: game.HomeTeam != "" && game.AwayTeam != "",
		Away:            e.teamLine(game.AwayTeam),
		Home:            e.teamLine(game.HomeTeam),
		Outcomes:        []OutcomeResult{},
	}
	if start, err := timeutil.ParseCommenceTime(game.CommenceTime); err == nil {
		res.CommenceTime = &start
	}

	var awayERA, homeERA stats.ERA
	if res.TeamsIdentified && lineup != nil {
		awayERA, homeERA = e.resolvePitchers(&res, lineup)
	}

	book, ok := game.PrimaryBookmaker()
	if !ok {
		return res
	}
	res.HasOdds = true
	res.Bookmaker = book.Title
	res.Outcomes = e.outcomes(book, res.Away, res.Home, awayERA, homeERA)
	return res
}

func (e *Evaluator) teamLine(name string) TeamLine {
	line := TeamLine{Record: standings.NotAvailable}
	if name == "" {
		return line
	}
	line.Name = name
	line.Code = e.resolve(name)
	if e.records != nil {
		line.Record = e.records.RecordFor(line.Code)
	}
	line.Wins = standings.WinsOf(line.Record)
	return line
}

func (e *Evaluator) resolvePitchers(res *MatchupResult, lineup PitcherLookup) (stats.ERA, stats.ERA) {
	away, awayOK := lineup.PitcherFor(res.Away.Code)
	home, homeOK := lineup.PitcherFor(res.Home.Code)
	if awayOK {
		res.AwayPitcher = &PitcherLine{Pitcher: away, ERA: e.eraOf(away.ID)}
	}
	if homeOK {
		res.HomePitcher = &PitcherLine{Pitcher: home, ERA: e.eraOf(home.ID)}
	}
	if !awayOK || !homeOK {
		return stats.ERA{}, stats.ERA{}
	}

	res.PitchersFound = true
	awayERA, homeERA := res.AwayPitcher.ERA, res.HomePitcher.ERA
	awayCmp := ComparePitcher(awayERA, homeERA, pitcherLabel(away, res.Away.Code, "A"))
	homeCmp := ComparePitcher(homeERA, awayERA, pitcherLabel(home, res.Home.Code, "H"))
	res.AwayPitcher.Comparison = &awayCmp
	res.HomePitcher.Comparison = &homeCmp
	return awayERA, homeERA
}

func (e *Evaluator) outcomes(book odds.Bookmaker, away, home TeamLine, awayERA, homeERA stats.ERA) []OutcomeResult {
	out := []OutcomeResult{}
	for _, market := range book.Markets {
		for _, o := range market.Outcomes {
			name := o.Name
			if name == "" {
				name = unknownOutcome
			}
			r := OutcomeResult{
				TeamName: name,
				Side:     SideUnknown,
				Price:    o.Price,
				Marker:   MarkerFor(o.Price),
			}
			switch code := e.resolve(name); {
			case away.Code != "" && code == away.Code:
				r.Side = SideAway
				r.Advisory = Advise(awayERA, homeERA, away.Wins, home.Wins, o.Price)
			case home.Code != "" && code == home.Code:
				r.Side = SideHome
				r.Advisory = Advise(homeERA, awayERA, home.Wins, away.Wins, o.Price)
			}
			out = append(out, r)
		}
	}
	return out
}

func (e *Evaluator) resolve(name string) string {
	if e.teams == nil {
		return name
	}
	return e.teams.Resolve(name)
}

func (e *Evaluator) eraOf(playerID int) stats.ERA {
	if e.eras == nil {
		return stats.ERA{}
	}
	return e.eras.EraOf(playerID)
}

// pitcherLabel renders "First Last [CODE, A]"; a missing first name falls back
// to the team code.
func pitcherLabel(p lineups.Pitcher, code, venue string) string {
	name := p.FullName()
	if p.FirstName == "" {
		name = strings.TrimSpace(code + " " + p.LastName)
	}
	return fmt.Sprintf("%s [%s, %s]", name, code, venue)
}
