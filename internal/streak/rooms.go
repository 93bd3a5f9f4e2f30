package streak

import "habit_streak_backend/internal/model"

// RoomForDays finds the room whose [MinDays, MaxDays] range contains the
// elapsed-day count. Rooms must be sorted ascending by MinDays; a nil
// MaxDays is unbounded above. Returns nil only if the table has a gap.
func RoomForDays(days int, rooms []model.Room) *model.Room {
	if days < 0 {
		days = 0
	}
	for i := range rooms {
		r := &rooms[i]
		if days >= r.MinDays && (r.MaxDays == nil || days <= *r.MaxDays) {
			return r
		}
	}
	return nil
}

// DefaultRooms is the seed table: contiguous ranges over [0, ∞) aligned
// with the early phase thresholds, last range unbounded.
func DefaultRooms() []model.Room {
	max := func(n int) *int { return &n }
	return []model.Room{
		{Code: "d0-2", Label: "スタート部屋（0〜2日）", MinDays: 0, MaxDays: max(2)},
		{Code: "d3-6", Label: "3日の壁部屋（3〜6日）", MinDays: 3, MaxDays: max(6)},
		{Code: "d7-13", Label: "1週間部屋（7〜13日）", MinDays: 7, MaxDays: max(13)},
		{Code: "d14-29", Label: "習慣化部屋（14〜29日）", MinDays: 14, MaxDays: max(29)},
		{Code: "d30-89", Label: "安定部屋（30〜89日）", MinDays: 30, MaxDays: max(89)},
		{Code: "d90plus", Label: "マスター部屋（90日〜）", MinDays: 90, MaxDays: nil},
	}
}
