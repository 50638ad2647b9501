package matchups

import (
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

const (
	advisoryERAGap  = 1.0
	advisoryWinsGap = 5
)

// Advise compares the market price for one side with that side's pitching and
// record edge. The note fires only when the side's starter beats the
// opponent's ERA by more than a run and the team has more than five extra
// wins: a favored price reads as a lock, an underdog price as an upset.
func Advise(eraPitcher, eraOpponent stats.ERA, winsPitcher, winsOpponent int, price odds.Price) Advisory {
	if !eraPitcher.Valid || !eraOpponent.Valid {
		return AdvisoryNone
	}
	eraDiff := eraOpponent.Value - eraPitcher.Value
	winsDiff := winsPitcher - winsOpponent
	if eraDiff <= advisoryERAGap || winsDiff <= advisoryWinsGap {
		return AdvisoryNone
	}
	switch price.Sign() {
	case -1:
		return AdvisoryLock
	case 1:
		return AdvisoryUpset
	default:
		return AdvisoryNone
	}
}

// MarkerFor tags numeric prices as favorite (negative) or underdog.
func MarkerFor(price odds.Price) Marker {
	if !price.Numeric() {
		return MarkerNone
	}
	if price.Sign() < 0 {
		return MarkerFavorite
	}
	return MarkerUnderdog
}
