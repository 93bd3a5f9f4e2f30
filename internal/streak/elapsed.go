// Package streak implements the rule engine behind the habit tracker:
// elapsed-time arithmetic, title tiers, day-gated content catalogs and the
// cohort room lookup. Everything here is pure; persistence and transport
// live in the service layer.
package streak

import (
	"fmt"
	"time"
)

// Elapsed is the wall-clock span since a streak start, decomposed into
// whole days plus the remainder.
type Elapsed struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ElapsedSince computes the elapsed span between start and now. A zero
// start returns the zero Elapsed, and a negative raw difference (clock
// skew, future start) is clamped to zero rather than going negative.
func ElapsedSince(start, now time.Time) Elapsed {
	if start.IsZero() {
		return Elapsed{}
	}

	diffSec := int(now.Sub(start) / time.Second)
	if diffSec < 0 {
		diffSec = 0
	}

	return Elapsed{
		Days:    diffSec / 86400,
		Hours:   (diffSec % 86400) / 3600,
		Minutes: (diffSec % 3600) / 60,
		Seconds: diffSec % 60,
	}
}

// TotalHours folds days into the hour component, for displays that do not
// reset the hour counter at each day boundary.
func (e Elapsed) TotalHours() int {
	return e.Hours + e.Days*24
}

// HMS renders the span as HH:MM:SS using TotalHours.
func (e Elapsed) HMS() string {
	return fmt.Sprintf("%02d:%02d:%02d", e.TotalHours(), e.Minutes, e.Seconds)
}

// Label renders the span the way the home screen shows it.
func (e Elapsed) Label() string {
	return fmt.Sprintf("%d日 %d時間 %d分 %d秒", e.Days, e.Hours, e.Minutes, e.Seconds)
}
