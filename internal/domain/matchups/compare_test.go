package matchups

import (
	"testing"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/stats"
)

func TestComparePitcherTiers(t *testing.T) {
	known := stats.KnownERA
	cases := []struct {
		name  string
		self  stats.ERA
		other stats.ERA
		bold  bool
		tier  Tier
	}{
		{"strong advantage", known(3.00), known(5.10), true, TierStrong},
		{"exactly two runs", known(2.00), known(4.00), true, TierStrong},
		{"moderate advantage", known(3.00), known(4.50), true, TierModerate},
		{"exactly one run", known(3.00), known(4.00), true, TierModerate},
		{"marginal advantage", known(3.00), known(3.50), true, TierMarginal},
		{"self worse", known(4.00), known(3.00), false, TierNone},
		{"equal", known(3.00), known(3.00), false, TierNone},
		{"self unknown", stats.ERA{}, known(3.00), false, TierNone},
		{"other unknown", known(3.00), stats.ERA{}, true, TierNone},
		{"both unknown", stats.ERA{}, stats.ERA{}, false, TierNone},
		{"known zero beats unknown", known(0), stats.ERA{}, true, TierNone},
	}
	for _, tc := range cases {
		got := ComparePitcher(tc.self, tc.other, "X")
		if got.Bold != tc.bold || got.Tier != tc.tier {
			t.Fatalf("%s: expected bold=%v tier=%s, got bold=%v tier=%s", tc.name, tc.bold, tc.tier, got.Bold, got.Tier)
		}
		if got.Label != "X" || got.ERA != tc.self {
			t.Fatalf("%s: expected label and self ERA carried through, got %+v", tc.name, got)
		}
	}
}

func TestComparePitcherIsNotSymmetric(t *testing.T) {
	a, b := stats.KnownERA(2.10), stats.KnownERA(4.90)
	left := ComparePitcher(a, b, "A")
	right := ComparePitcher(b, a, "B")
	if !left.Bold || left.Tier != TierStrong {
		t.Fatalf("expected better pitcher highlighted, got %+v", left)
	}
	if right.Bold || right.Tier != TierNone {
		t.Fatalf("expected worse pitcher plain, got %+v", right)
	}

	eq := stats.KnownERA(3.3)
	if ComparePitcher(eq, eq, "A").Bold || ComparePitcher(eq, eq, "B").Bold {
		t.Fatal("expected both sides plain on equal ERA")
	}
}

func TestTierColor(t *testing.T) {
	cases := map[Tier]string{
		TierStrong:   "green",
		TierModerate: "orange",
		TierMarginal: "",
		TierNone:     "",
	}
	for tier, want := range cases {
		if got := tier.Color(); got != want {
			t.Fatalf("%s: expected %q, got %q", tier, want, got)
		}
	}
}
