package streak

import "sort"

// Article is an in-app article unlocked once the elapsed-day count reaches
// MinDays.
type Article struct {
	ID      string `json:"id"`
	MinDays int    `json:"minDays"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Articles is the static in-app catalog.
var Articles = []Article{
	{
		ID:      "a-start-dash",
		MinDays: 0,
		Title:   "スタートダッシュのコツ",
		Content: "最初の3日は「環境づくり」：SNSミュート / 寝室からスマホ退避 / 風呂→就寝ルーティン固定。",
	},
	{
		ID:      "a-day3-wall",
		MinDays: 3,
		Title:   "3日目の壁：切り替えの型",
		Content: "散歩10分→腕立て10回→冷水洗顔×3セット。衝動は必ず7〜10分で弱まる。物理で切る。",
	},
	{
		ID:      "a-week1",
		MinDays: 7,
		Title:   "1週間：ご褒美の設計",
		Content: "糖やギャンブルでなく「体験」にご褒美（サウナ/映画/カフェ）。次の1週間の燃料に。",
	},
	{
		ID:      "a-week2",
		MinDays: 14,
		Title:   "2週間：習慣化チェック",
		Content: "就寝・起床・入浴の固定化。毎日の同時刻化で「考えずに行動する」状態を作る。",
	},
	{
		ID:      "a-day21",
		MinDays: 21,
		Title:   "21日：トリガー攻略",
		Content: "引き金の棚卸し（時間/場所/感情/アプリ）。先回りで予定を埋めてトリガーを踏ませない。",
	},
	{
		ID:      "a-day30",
		MinDays: 30,
		Title:   "30日：維持のミニマム",
		Content: "毎日1分のジャーナルで客観視。筋トレ・散歩・温冷シャワーなどの物理ルーチンを1つは死守。",
	},
}

// UnlockedArticles returns the articles whose threshold has been reached,
// ordered ascending by threshold. Negative inputs are treated as day 0.
func UnlockedArticles(days int) []Article {
	if days < 0 {
		days = 0
	}
	out := make([]Article, 0, len(Articles))
	for _, a := range Articles {
		if days >= a.MinDays {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinDays < out[j].MinDays })
	return out
}

// NextArticle returns the still-locked article with the smallest
// threshold, or nil once everything is unlocked.
func NextArticle(days int) *Article {
	if days < 0 {
		days = 0
	}
	sorted := make([]Article, len(Articles))
	copy(sorted, Articles)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinDays < sorted[j].MinDays })
	for i := range sorted {
		if sorted[i].MinDays > days {
			return &sorted[i]
		}
	}
	return nil
}
