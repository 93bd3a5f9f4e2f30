package streak

import (
	"testing"
	"time"
)

func TestElapsedSinceZeroStart(t *testing.T) {
	got := ElapsedSince(time.Time{}, time.Now())
	if got != (Elapsed{}) {
		t.Errorf("expected zero elapsed for zero start, got %+v", got)
	}
}

func TestElapsedSinceClampsNegative(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(5 * time.Minute) // start in the future
	got := ElapsedSince(start, now)
	if got != (Elapsed{}) {
		t.Errorf("expected clamp to zero for future start, got %+v", got)
	}
}

func TestElapsedSinceSameInstant(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := ElapsedSince(now, now); got != (Elapsed{}) {
		t.Errorf("expected zero elapsed at t==t, got %+v", got)
	}
}

func TestElapsedSinceDecomposition(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		secs int
		want Elapsed
	}{
		{"one second", 1, Elapsed{0, 0, 0, 1}},
		{"one minute", 60, Elapsed{0, 0, 1, 0}},
		{"one hour", 3600, Elapsed{0, 1, 0, 0}},
		{"just under a day", 86399, Elapsed{0, 23, 59, 59}},
		{"exactly a day", 86400, Elapsed{1, 0, 0, 0}},
		{"day plus hour", 90000, Elapsed{1, 1, 0, 0}},
		{"two days mixed", 2*86400 + 3*3600 + 4*60 + 5, Elapsed{2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ElapsedSince(start, start.Add(time.Duration(tc.secs)*time.Second))
			if got != tc.want {
				t.Errorf("ElapsedSince(+%ds) = %+v, want %+v", tc.secs, got, tc.want)
			}
		})
	}
}

func TestElapsedHMSDoesNotResetAtDayBoundary(t *testing.T) {
	e := Elapsed{Days: 1, Hours: 1, Minutes: 2, Seconds: 3}
	if got := e.TotalHours(); got != 25 {
		t.Errorf("TotalHours = %d, want 25", got)
	}
	if got := e.HMS(); got != "25:02:03" {
		t.Errorf("HMS = %q, want %q", got, "25:02:03")
	}
}

func TestElapsedHMSZero(t *testing.T) {
	if got := (Elapsed{}).HMS(); got != "00:00:00" {
		t.Errorf("HMS of zero elapsed = %q, want 00:00:00", got)
	}
}
