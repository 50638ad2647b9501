package lineups

// Index resolves the probable starting pitcher for a team on one date.
// The zero value is an empty index; every lookup on it is absent.
type Index struct {
	entries []Entry
}

// NewIndex builds an index over a copy of the date's entries.
func NewIndex(entries []Entry) Index {
	if len(entries) == 0 {
		return Index{}
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return Index{entries: copied}
}

// PitcherFor scans entries in feed order and returns the starter of the first
// entry naming code as home or away team. If that entry has no starter listed
// the result is absent, even when a later entry mentions the same team.
func (ix Index) PitcherFor(code string) (Pitcher, bool) {
	if code == "" {
		return Pitcher{}, false
	}
	for _, entry := range ix.entries {
		var starter *Pitcher
		switch {
		case entry.HomeTeam == code:
			starter = entry.HomeStartingPitcher
		case entry.AwayTeam == code:
			starter = entry.AwayStartingPitcher
		default:
			continue
		}
		if starter == nil {
			return Pitcher{}, false
		}
		p := *starter
		p.TeamCode = code
		return p, true
	}
	return Pitcher{}, false
}

// Len reports the number of entries indexed.
func (ix Index) Len() int {
	return len(ix.entries)
}
