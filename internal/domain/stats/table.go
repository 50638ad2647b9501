package stats

// PlayerSeason is one row of the season stats feed. EarnedRunAverage is nil
// when the feed reports no value.
type PlayerSeason struct {
	PlayerID         int      `json:"playerId"`
	EarnedRunAverage *float64 `json:"earnedRunAverage"`
}

// EraTable maps player IDs to season ERA. It is built once per board run.
type EraTable struct {
	eras map[int]ERA
}

// NewEraTable indexes season rows by player. Later rows for the same player
// overwrite earlier ones, including with a null ERA.
func NewEraTable(rows []PlayerSeason) EraTable {
	eras := make(map[int]ERA, len(rows))
	for _, row := range rows {
		if row.EarnedRunAverage == nil {
			eras[row.PlayerID] = ERA{}
			continue
		}
		eras[row.PlayerID] = KnownERA(*row.EarnedRunAverage)
	}
	return EraTable{eras: eras}
}

// EraOf returns the ERA for playerID; unknown players yield an invalid ERA.
func (t EraTable) EraOf(playerID int) ERA {
	return t.eras[playerID]
}

// Len reports the number of players in the table.
func (t EraTable) Len() int {
	return len(t.eras)
}
