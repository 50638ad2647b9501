package board

import (
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
)

// Board is one complete evaluation run over the upcoming dates.
type Board struct {
	RunID       string      `json:"runId"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Timezone    string      `json:"timezone"`
	Dates       []DateBoard `json:"dates"`
}

// DateBoard holds the evaluated games for one display-zone calendar date.
type DateBoard struct {
	Date               string                   `json:"date"`
	LineupsUnavailable bool                     `json:"lineupsUnavailable"`
	LineupError        string                   `json:"lineupError,omitempty"`
	Games              []matchups.MatchupResult `json:"games"`
}

// DateBoard returns the board for a YYYY-MM-DD date.
func (b Board) DateBoard(date string) (DateBoard, bool) {
	for _, d := range b.Dates {
		if d.Date == date {
			return d, true
		}
	}
	return DateBoard{}, false
}

// Game returns one game of a date by ID.
func (d DateBoard) Game(id string) (matchups.MatchupResult, bool) {
	for _, g := range d.Games {
		if g.GameID == id {
			return g, true
		}
	}
	return matchups.MatchupResult{}, false
}

// GameCount returns the number of games across all dates.
func (b Board) GameCount() int {
	n := 0
	for _, d := range b.Dates {
		n += len(d.Games)
	}
	return n
}
