package streak

import "math"

// RecommendedItem is an external blog link surfaced for a given streak
// stage. Path is relative to the configured blog base URL.
type RecommendedItem struct {
	ID       string `json:"id"`
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Path     string `json:"path"`
}

type recommendedRange struct {
	MaxDays int
	Items   []RecommendedItem
}

// recommendedByDay buckets links by the last day they are shown; the final
// bucket is unbounded.
var recommendedByDay = []recommendedRange{
	{
		MaxDays: 2,
		Items: []RecommendedItem{
			{ID: "start-dash", Icon: "🚀", Title: "スタートダッシュのコツ", Subtitle: "最初の3日は“環境”で勝つ", Path: "/onakin-day1-motivation/"},
			{ID: "urge-surfing", Icon: "🧊", Title: "衝動を切る即効技10選", Subtitle: "波は7〜10分で必ず引く", Path: "/urge-surfing/"},
		},
	},
	{
		MaxDays: 6,
		Items: []RecommendedItem{
			{ID: "night-detox", Icon: "📱", Title: "夜のスマホ断ちルール", Subtitle: "21時以降は“紙/Kindleのみ”", Path: "/night-detox/"},
			{ID: "sleep-bath", Icon: "🛁", Title: "睡眠を整える入浴レシピ", Subtitle: "就寝90分前の湯船が効く", Path: "/sleep-bath/"},
		},
	},
	{
		MaxDays: 13,
		Items: []RecommendedItem{
			{ID: "habit-checklist", Icon: "📈", Title: "1週間突破！定着のチェック表", Subtitle: "固定化できた？を点検", Path: "/habit-checklist/"},
		},
	},
	{
		MaxDays: 29,
		Items: []RecommendedItem{
			{ID: "day21-wall", Icon: "🛡️", Title: "21日目の壁の越え方", Subtitle: "“やる気”でなく“予定”で動く", Path: "/21days-wall/"},
		},
	},
	{
		MaxDays: 59,
		Items: []RecommendedItem{
			{ID: "weekly-review", Icon: "⚔️", Title: "安定フェーズの週次レビュー", Subtitle: "やめることを1つ決める", Path: "/weekly-review/"},
		},
	},
	{
		MaxDays: 89,
		Items: []RecommendedItem{
			{ID: "gear-up-60", Icon: "🗺️", Title: "60日からのギアアップ", Subtitle: "筋トレ週3と情報発信", Path: "/gear-up-60/"},
		},
	},
	{
		MaxDays: math.MaxInt,
		Items: []RecommendedItem{
			{ID: "share-after-90", Icon: "🏆", Title: "90日以降：維持より共有へ", Subtitle: "ノウハウの言語化と発信", Path: "/share-after-90/"},
		},
	},
}

// RecommendedFor returns the link bucket matching the elapsed-day count.
// Negative inputs are treated as day 0.
func RecommendedFor(days int) []RecommendedItem {
	if days < 0 {
		days = 0
	}
	for _, r := range recommendedByDay {
		if days <= r.MaxDays {
			return r.Items
		}
	}
	return nil
}
