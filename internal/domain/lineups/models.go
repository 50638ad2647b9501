package lineups

import "strings"

// Pitcher is a probable starter as listed in a day's lineup feed.
type Pitcher struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	TeamCode  string `json:"teamCode"`
}

// FullName joins first and last name, skipping empty parts.
func (p Pitcher) FullName() string {
	return strings.TrimSpace(strings.Join([]string{p.FirstName, p.LastName}, " "))
}

// Entry is one game in the lineup feed. Either starter may be missing when
// the feed has not announced it yet.
type Entry struct {
	HomeTeam            string   `json:"homeTeam"`
	AwayTeam            string   `json:"awayTeam"`
	HomeStartingPitcher *Pitcher `json:"homeStartingPitcher,omitempty"`
	AwayStartingPitcher *Pitcher `json:"awayStartingPitcher,omitempty"`
}
