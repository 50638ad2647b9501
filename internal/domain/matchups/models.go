package matchups

import (
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/lineups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/teams"
)

// Tier is the emphasis applied to a pitcher whose ERA beats the opponent's.
type Tier string

const (
	TierStrong   Tier = "strong"
	TierModerate Tier = "moderate"
	TierMarginal Tier = "marginal"
	TierNone     Tier = "none"
)

// Color returns the highlight color for the tier, empty when uncolored.
func (t Tier) Color() string {
	switch t {
	case TierStrong:
		return "green"
	case TierModerate:
		return "orange"
	default:
		return ""
	}
}

// Comparison is the annotation for one pitcher in a matchup.
type Comparison struct {
	Label string    `json:"label"`
	ERA   stats.ERA `json:"era"`
	Bold  bool      `json:"bold"`
	Tier  Tier      `json:"tier"`
}

// Advisory is the note attached to a bookmaker outcome.
type Advisory string

const (
	AdvisoryNone  Advisory = ""
	AdvisoryLock  Advisory = "potential lock"
	AdvisoryUpset Advisory = "potential upset"
)

// Side identifies which team of the game an outcome names.
type Side string

const (
	SideAway    Side = "away"
	SideHome    Side = "home"
	SideUnknown Side = "unknown"
)

// Marker flags whether the market favors an outcome.
type Marker string

const (
	MarkerNone     Marker = ""
	MarkerFavorite Marker = "favorite"
	MarkerUnderdog Marker = "underdog"
)

// TeamLine is a resolved team with its record.
type TeamLine struct {
	teams.Team
	Record string `json:"record"`
	Wins   int    `json:"wins"`
}

// PitcherLine is a resolved probable starter.
type PitcherLine struct {
	Pitcher    lineups.Pitcher `json:"pitcher"`
	ERA        stats.ERA       `json:"era"`
	Comparison *Comparison     `json:"comparison,omitempty"`
}

// OutcomeResult is a bookmaker outcome annotated for display.
type OutcomeResult struct {
	TeamName string     `json:"teamName"`
	Side     Side       `json:"side"`
	Price    odds.Price `json:"price"`
	Marker   Marker     `json:"marker,omitempty"`
	Advisory Advisory   `json:"advisory,omitempty"`
}

// MatchupResult is the fully resolved view of one game.
type MatchupResult struct {
	GameID          string          `json:"gameId"`
	CommenceTime    *time.Time      `json:"commenceTime,omitempty"`
	TeamsIdentified bool            `json:"teamsIdentified"`
	Away            TeamLine        `json:"away"`
	Home            TeamLine        `json:"home"`
	PitchersFound   bool            `json:"pitchersFound"`
	AwayPitcher     *PitcherLine    `json:"awayPitcher,omitempty"`
	HomePitcher     *PitcherLine    `json:"homePitcher,omitempty"`
	Bookmaker       string          `json:"bookmaker,omitempty"`
	HasOdds         bool            `json:"hasOdds"`
	Outcomes        []OutcomeResult `json:"outcomes"`
}
