package streak

import "testing"

func TestTitleForDaysFloor(t *testing.T) {
	// Below the first threshold the first title still applies.
	if got := TitleForDays(0); got != Phases[0].Title {
		t.Errorf("TitleForDays(0) = %q, want floor title %q", got, Phases[0].Title)
	}
}

func TestTitleForDaysThresholds(t *testing.T) {
	for _, p := range Phases {
		if got := TitleForDays(p.MinDays); got != p.Title {
			t.Errorf("TitleForDays(%d) = %q, want %q", p.MinDays, got, p.Title)
		}
		// One day before a threshold must not yet grant the tier.
		if got := TitleForDays(p.MinDays - 1); got == p.Title && p.MinDays > 1 {
			t.Errorf("TitleForDays(%d) granted %q a day early", p.MinDays-1, p.Title)
		}
	}
}

func TestTitleRankMonotonic(t *testing.T) {
	// Rank never regresses as days increase.
	prev := -1
	for d := 0; d <= 400; d++ {
		idx := PhaseIndexForDays(d)
		if idx < prev {
			t.Fatalf("rank regressed at day %d: %d -> %d", d, prev, idx)
		}
		prev = idx
	}
}

func TestPhasesOrderedAscending(t *testing.T) {
	for i := 1; i < len(Phases); i++ {
		if Phases[i].MinDays <= Phases[i-1].MinDays {
			t.Errorf("Phases not strictly ascending at index %d", i)
		}
	}
}
