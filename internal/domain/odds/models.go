package odds

// Outcome is one side of a bookmaker market.
type Outcome struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Market groups outcomes for a single bet type (e.g. h2h).
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Bookmaker is a single sportsbook's markets for a game.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Game is an odds feed event. Team names are the feed's full names and
// CommenceTime keeps the feed's raw UTC timestamp. Games are never mutated
// after they leave the provider.
type Game struct {
	ID           string      `json:"id"`
	HomeTeam     string      `json:"homeTeam"`
	AwayTeam     string      `json:"awayTeam"`
	CommenceTime string      `json:"commenceTime"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// PrimaryBookmaker returns the first bookmaker listed for the game; only it
// is consulted when evaluating a matchup.
func (g Game) PrimaryBookmaker() (Bookmaker, bool) {
	if len(g.Bookmakers) == 0 {
		return Bookmaker{}, false
	}
	return g.Bookmakers[0], true
}
