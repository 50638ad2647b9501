package matchups

import (
	"math"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

const (
	strongGap   = 2.0
	moderateGap = 1.0
)

// ComparePitcher annotates self against other. Only a strictly lower ERA earns
// emphasis; the size of the gap picks the tier. Call it once per pitcher with
// the arguments swapped.
func ComparePitcher(self, other stats.ERA, label string) Comparison {
	c := Comparison{Label: label, ERA: self, Tier: TierNone}
	if !self.Valid {
		return c
	}
	if !other.Valid {
		c.Bold = true
		return c
	}
	if self.Value >= other.Value {
		return c
	}

	c.Bold = true
	switch diff := math.Abs(self.Value - other.Value); {
	case diff >= strongGap:
		c.Tier = TierStrong
	case diff >= moderateGap:
		c.Tier = TierModerate
	default:
		c.Tier = TierMarginal
	}
	return c
}
