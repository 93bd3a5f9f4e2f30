package streak

import "testing"

func TestDefaultRoomsPartitionDomain(t *testing.T) {
	rooms := DefaultRooms()

	if rooms[0].MinDays != 0 {
		t.Fatalf("first room starts at %d, want 0", rooms[0].MinDays)
	}
	if rooms[len(rooms)-1].MaxDays != nil {
		t.Fatal("last room must be unbounded above")
	}

	// Adjacent ranges are contiguous: next.min == prev.max + 1.
	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1]
		if prev.MaxDays == nil {
			t.Fatalf("room %s is unbounded but not last", prev.Code)
		}
		if rooms[i].MinDays != *prev.MaxDays+1 {
			t.Errorf("gap or overlap between %s and %s", prev.Code, rooms[i].Code)
		}
	}
}

func TestRoomForDaysExactlyOneMatch(t *testing.T) {
	rooms := DefaultRooms()
	for d := 0; d <= 500; d++ {
		matches := 0
		for i := range rooms {
			r := rooms[i]
			if d >= r.MinDays && (r.MaxDays == nil || d <= *r.MaxDays) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("day %d matched %d rooms, want exactly 1", d, matches)
		}
		if got := RoomForDays(d, rooms); got == nil {
			t.Fatalf("RoomForDays(%d) returned nil", d)
		}
	}
}

func TestRoomForDaysBoundaries(t *testing.T) {
	rooms := DefaultRooms()
	cases := []struct {
		days int
		code string
	}{
		{0, "d0-2"}, {2, "d0-2"}, {3, "d3-6"}, {6, "d3-6"},
		{7, "d7-13"}, {13, "d7-13"}, {14, "d14-29"}, {29, "d14-29"},
		{30, "d30-89"}, {89, "d30-89"}, {90, "d90plus"}, {10000, "d90plus"},
	}
	for _, tc := range cases {
		got := RoomForDays(tc.days, rooms)
		if got == nil || got.Code != tc.code {
			t.Errorf("RoomForDays(%d) = %v, want %s", tc.days, got, tc.code)
		}
	}
}

func TestRoomForDaysNegativeClamped(t *testing.T) {
	rooms := DefaultRooms()
	if got := RoomForDays(-3, rooms); got == nil || got.Code != "d0-2" {
		t.Errorf("negative days should land in the first room, got %v", got)
	}
}
