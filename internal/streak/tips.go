package streak

import "math/rand"

// Rank buckets users into four tiers for the contextual tips. Unlike the
// phase titles this is a coarse grouping keyed by day thresholds.
type Rank string

const (
	RankPadawan Rank = "padawan"
	RankKnight  Rank = "knight"
	RankMaster  Rank = "master"
	RankGrand   Rank = "grand"
)

// TipCategory is one of the three tip buttons on the home screen.
type TipCategory string

const (
	TipMotivation TipCategory = "motivation"
	TipRelax      TipCategory = "relax"
	TipDetox      TipCategory = "detox"
)

// RankForDays maps elapsed days to a tip rank: <7 padawan, <30 knight,
// <90 master, else grand.
func RankForDays(days int) Rank {
	switch {
	case days < 7:
		return RankPadawan
	case days < 30:
		return RankKnight
	case days < 90:
		return RankMaster
	default:
		return RankGrand
	}
}

var hints = map[Rank]map[TipCategory][]string{
	RankPadawan: {
		TipMotivation: {"最初の3日は勢い。迷う前に手を動かす。", "今日は開いた時点で勝ち。", "寝室とスマホを分離。"},
		TipRelax:      {"4-4-8呼吸×3セット。", "風呂→冷水10秒→深呼吸。", "15分散歩、光を浴びる。"},
		TipDetox:      {"今から60分は通知オフ。", "ベッドにスマホ持ち込まない。", "ホーム1ページ目を空にする。"},
	},
	RankKnight: {
		TipMotivation: {"時間を決めるが勝ち。", "今日も1ミリ進め。", "朝イチで勝ちを作る。"},
		TipRelax:      {"肩胸ストレッチ30秒。", "5分目閉じ瞑想。", "温冷交代シャワー。"},
		TipDetox:      {"SNSは2回/日に制限。", "動画は“後で見る”へ。", "就寝90分前はブルーライト遮断。"},
	},
	RankMaster: {
		TipMotivation: {"欲求の波は90秒。やり過ごす。", "やらないリスト更新。", "過去の自分に勝つ。"},
		TipRelax:      {"5吸って7吐く×5。", "首後ろを温める。", "音なし散歩＝歩行瞑想。"},
		TipDetox:      {"SNS通知は全切り。", "ホーム3アプリだけ。", "週次でスクタイをレビュー。"},
	},
	RankGrand: {
		TipMotivation: {"自制は筋トレ。軽く反復。", "環境＞意志。配置を最適化。", "やらない自由がやれる自由を育てる。"},
		TipRelax:      {"1分ボディスキャン。", "笑顔10秒で副交感。", "日光・塩・水を意識。"},
		TipDetox:      {"週1完全オフライン。", "娯楽端末を分離。", "開く前に目的を言語化。"},
	},
}

// Tips returns the full tip list for a rank and category; nil for an
// unknown category.
func Tips(rank Rank, category TipCategory) []string {
	byCat, ok := hints[rank]
	if !ok {
		return nil
	}
	return byCat[category]
}

// RandomTip picks one tip uniformly at random. The choice is intentionally
// not stable across calls.
func RandomTip(rank Rank, category TipCategory) (string, bool) {
	choices := Tips(rank, category)
	if len(choices) == 0 {
		return "", false
	}
	return choices[rand.Intn(len(choices))], true
}
