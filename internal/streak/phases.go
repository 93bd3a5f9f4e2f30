package streak

// Phase is one title tier, unlocked once the elapsed-day count reaches
// MinDays.
type Phase struct {
	MinDays int    `json:"minDays"`
	Title   string `json:"title"`
}

// Phases is ordered ascending by MinDays. The first entry doubles as the
// floor: any day count below 1 still resolves to it.
var Phases = []Phase{
	{MinDays: 1, Title: "見習いパダワン"},
	{MinDays: 3, Title: "駆け出しジェダイ"},
	{MinDays: 7, Title: "第1関門突破"},
	{MinDays: 14, Title: "フォースの芽生え"},
	{MinDays: 21, Title: "集中の達人"},
	{MinDays: 30, Title: "ジェダイ・ナイト"},
	{MinDays: 60, Title: "心の守護者"},
	{MinDays: 90, Title: "ハイパードライブ"},
	{MinDays: 120, Title: "マスター候補"},
	{MinDays: 180, Title: "ジェダイ・マスター"},
	{MinDays: 365, Title: "伝説の賢者"},
}

// TitleForDays returns the title of the highest tier whose threshold does
// not exceed days. Inputs below the first threshold get the first title.
func TitleForDays(days int) string {
	cur := Phases[0].Title
	for _, p := range Phases {
		if days >= p.MinDays {
			cur = p.Title
		}
	}
	return cur
}

// PhaseIndexForDays returns the index into Phases resolved for days,
// 0 when below the first threshold. Used by tests and rank mapping.
func PhaseIndexForDays(days int) int {
	idx := 0
	for i, p := range Phases {
		if days >= p.MinDays {
			idx = i
		}
	}
	return idx
}
