package service

import (
	"testing"

	"habit_streak_backend/internal/streak"
)

func TestArticlesForSplitsUnlockedAndNext(t *testing.T) {
	svc := &ContentService{}

	list := svc.ArticlesFor(7)
	if len(list.Unlocked) == 0 {
		t.Fatal("day 7 should have unlocked articles")
	}
	for _, a := range list.Unlocked {
		if a.MinDays > 7 {
			t.Errorf("locked article %q leaked into unlocked list", a.ID)
		}
	}
	if list.Next == nil {
		t.Fatal("day 7 should still have a next article")
	}
	if list.Next.MinDays <= 7 {
		t.Errorf("next article unlocks at day %d, want later than 7", list.Next.MinDays)
	}

	exhausted := svc.ArticlesFor(1000)
	if exhausted.Next != nil {
		t.Errorf("day 1000 next = %q, want nil once the catalog is read", exhausted.Next.ID)
	}
}

func TestTipForMatchesRank(t *testing.T) {
	svc := &ContentService{}

	tip, ok := svc.TipFor(45, streak.TipMotivation)
	if !ok {
		t.Fatal("TipFor returned no tip for a valid category")
	}
	if want := streak.RankForDays(45); tip.Rank != want {
		t.Errorf("tip rank = %q, want %q", tip.Rank, want)
	}

	candidates := streak.Tips(tip.Rank, streak.TipMotivation)
	found := false
	for _, c := range candidates {
		if c == tip.Text {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("tip %q is not in the catalog for its rank", tip.Text)
	}

	if _, ok := svc.TipFor(45, streak.TipCategory("astrology")); ok {
		t.Error("unknown category produced a tip")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>plain paragraph</p>\n", "plain paragraph"},
		{"title &hellip; continued", "title … continued"},
		{"a&nbsp;b", "a b"},
		{"<script>alert(1)</script>safe", "safe"},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
