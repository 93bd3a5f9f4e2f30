package streak

import "testing"

func TestRankForDays(t *testing.T) {
	cases := []struct {
		days int
		want Rank
	}{
		{0, RankPadawan}, {6, RankPadawan},
		{7, RankKnight}, {29, RankKnight},
		{30, RankMaster}, {89, RankMaster},
		{90, RankGrand}, {365, RankGrand},
	}
	for _, tc := range cases {
		if got := RankForDays(tc.days); got != tc.want {
			t.Errorf("RankForDays(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestTipsCatalogComplete(t *testing.T) {
	ranks := []Rank{RankPadawan, RankKnight, RankMaster, RankGrand}
	cats := []TipCategory{TipMotivation, TipRelax, TipDetox}
	for _, r := range ranks {
		for _, c := range cats {
			if got := Tips(r, c); len(got) != 3 {
				t.Errorf("Tips(%s, %s) has %d entries, want 3", r, c, len(got))
			}
		}
	}
}

func TestRandomTipDrawsFromCatalog(t *testing.T) {
	valid := make(map[string]bool)
	for _, s := range Tips(RankKnight, TipRelax) {
		valid[s] = true
	}
	for i := 0; i < 50; i++ {
		tip, ok := RandomTip(RankKnight, TipRelax)
		if !ok {
			t.Fatal("RandomTip returned no tip for a populated bucket")
		}
		if !valid[tip] {
			t.Fatalf("RandomTip returned %q, not in the catalog", tip)
		}
	}
}

func TestRandomTipUnknownCategory(t *testing.T) {
	if _, ok := RandomTip(RankPadawan, TipCategory("cooking")); ok {
		t.Error("expected no tip for unknown category")
	}
}
