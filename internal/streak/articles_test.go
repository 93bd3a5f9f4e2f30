package streak

import "testing"

func TestUnlockedArticlesAscending(t *testing.T) {
	for d := 0; d <= 40; d++ {
		got := UnlockedArticles(d)
		for i := 1; i < len(got); i++ {
			if got[i].MinDays < got[i-1].MinDays {
				t.Fatalf("day %d: unlocked list not ascending by threshold", d)
			}
		}
		for _, a := range got {
			if a.MinDays > d {
				t.Fatalf("day %d: locked article %s leaked into unlocked set", d, a.ID)
			}
		}
	}
}

func TestUnlockedArticlesMonotone(t *testing.T) {
	// unlocked(d) ⊆ unlocked(d+1)
	for d := 0; d <= 40; d++ {
		cur := UnlockedArticles(d)
		next := UnlockedArticles(d + 1)
		nextIDs := make(map[string]bool, len(next))
		for _, a := range next {
			nextIDs[a.ID] = true
		}
		for _, a := range cur {
			if !nextIDs[a.ID] {
				t.Fatalf("article %s unlocked at day %d but missing at day %d", a.ID, d, d+1)
			}
		}
	}
}

func TestNextArticleProperties(t *testing.T) {
	for d := 0; d <= 40; d++ {
		next := NextArticle(d)
		if next == nil {
			// Everything unlocked: no catalog item may remain above d.
			for _, a := range Articles {
				if a.MinDays > d {
					t.Fatalf("day %d: NextArticle nil but %s still locked", d, a.ID)
				}
			}
			continue
		}
		if next.MinDays <= d {
			t.Fatalf("day %d: next article %s threshold %d not in the future", d, next.ID, next.MinDays)
		}
		// No catalog item strictly between d and the next threshold.
		for _, a := range Articles {
			if a.MinDays > d && a.MinDays < next.MinDays {
				t.Fatalf("day %d: %s (min %d) lies between d and next %s (min %d)",
					d, a.ID, a.MinDays, next.ID, next.MinDays)
			}
		}
	}
}

func TestNextArticleExhausted(t *testing.T) {
	if next := NextArticle(365); next != nil {
		t.Errorf("expected no next article at day 365, got %s", next.ID)
	}
}

func TestNegativeDaysTreatedAsZero(t *testing.T) {
	if len(UnlockedArticles(-5)) != len(UnlockedArticles(0)) {
		t.Error("negative days should resolve like day 0")
	}
}
