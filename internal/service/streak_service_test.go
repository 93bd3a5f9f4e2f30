package service

import (
	"errors"
	"testing"
	"time"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() (time.Time, bool) {
	return c.t, true
}

type memSettingsRepo struct {
	rows map[uint]*model.UserSettings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{rows: make(map[uint]*model.UserSettings)}
}

func (r *memSettingsRepo) EnsureRow(userID uint) error {
	if _, ok := r.rows[userID]; !ok {
		r.rows[userID] = &model.UserSettings{UserID: userID}
	}
	return nil
}

func (r *memSettingsRepo) FindByUser(userID uint) (*model.UserSettings, error) {
	row, ok := r.rows[userID]
	if !ok {
		return nil, errors.New("not found")
	}
	return row, nil
}

func (r *memSettingsRepo) SetStreakStart(userID uint, startAt time.Time) error {
	r.rows[userID].StreakStartedAt = &startAt
	return nil
}

type memResetLogRepo struct {
	entries []time.Time
	fail    bool
}

func (r *memResetLogRepo) Append(userID uint, resetAt time.Time) error {
	if r.fail {
		return errors.New("audit store down")
	}
	r.entries = append(r.entries, resetAt)
	return nil
}

func (r *memResetLogRepo) FindByUser(userID uint, limit int) ([]model.ResetLog, error) {
	var out []model.ResetLog
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, model.ResetLog{UserID: userID, ResetAt: r.entries[i]})
	}
	return out, nil
}

type memRoomRepo struct {
	rooms []model.Room
}

func (r *memRoomRepo) ListOrdered() ([]model.Room, error) {
	return r.rooms, nil
}

func newStreakService(clock Clock) (*StreakService, *memSettingsRepo, *memResetLogRepo) {
	settings := newMemSettingsRepo()
	resetLogs := &memResetLogRepo{}
	rooms := &memRoomRepo{rooms: streak.DefaultRooms()}
	return NewStreakService(settings, resetLogs, rooms, clock), settings, resetLogs
}

func TestEnsureStartedSeedsAbsentStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, settings, _ := newStreakService(&fixedClock{t: now})

	got, err := svc.EnsureStarted(1)
	if err != nil {
		t.Fatalf("EnsureStarted: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("seeded start = %v, want %v", got, now)
	}
	if settings.rows[1].StreakStartedAt == nil {
		t.Error("settings row was not persisted")
	}
}

func TestEnsureStartedIsIdempotent(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc, _, _ := newStreakService(clock)

	first, err := svc.EnsureStarted(1)
	if err != nil {
		t.Fatalf("first EnsureStarted: %v", err)
	}

	// A later call must not move the start even though time passed.
	clock.t = clock.t.Add(48 * time.Hour)
	second, err := svc.EnsureStarted(1)
	if err != nil {
		t.Fatalf("second EnsureStarted: %v", err)
	}
	if !second.Equal(first) {
		t.Errorf("second call moved start from %v to %v", first, second)
	}
}

func TestResetOverwritesStart(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc, _, resetLogs := newStreakService(clock)

	old, _ := svc.EnsureStarted(1)
	clock.t = clock.t.Add(10 * 24 * time.Hour)

	got, err := svc.Reset(1)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !got.After(old) {
		t.Errorf("reset start %v is not after old start %v", got, old)
	}
	if e := streak.ElapsedSince(got, clock.t); e.Days != 0 || e.Seconds != 0 {
		t.Errorf("elapsed right after reset = %+v, want zero", e)
	}
	if len(resetLogs.entries) != 1 {
		t.Errorf("reset log entries = %d, want 1", len(resetLogs.entries))
	}
}

func TestResetSucceedsWhenAuditFails(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc, settings, resetLogs := newStreakService(clock)
	resetLogs.fail = true

	got, err := svc.Reset(1)
	if err != nil {
		t.Fatalf("Reset returned error on audit failure: %v", err)
	}
	if start := settings.rows[1].StreakStartedAt; start == nil || !start.Equal(got) {
		t.Errorf("start not persisted despite audit failure: %v", start)
	}
}

func TestStatusDerivesFromStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{t: start}
	svc, _, _ := newStreakService(clock)

	if _, err := svc.EnsureStarted(1); err != nil {
		t.Fatalf("EnsureStarted: %v", err)
	}
	clock.t = start.Add(10*24*time.Hour + 3*time.Hour)

	status, err := svc.Status(1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Elapsed.Days != 10 {
		t.Errorf("Days = %d, want 10", status.Elapsed.Days)
	}
	if want := streak.TitleForDays(10); status.Title != want {
		t.Errorf("Title = %q, want %q", status.Title, want)
	}
	if want := streak.RankForDays(10); status.Rank != want {
		t.Errorf("Rank = %q, want %q", status.Rank, want)
	}
	if status.Room == nil {
		t.Fatal("Room is nil")
	}
	if status.Room.MinDays > 10 || (status.Room.MaxDays != nil && *status.Room.MaxDays < 10) {
		t.Errorf("Room %q does not cover day 10", status.Room.Code)
	}
}

func TestElapsedDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{t: start}
	svc, _, _ := newStreakService(clock)

	if _, err := svc.EnsureStarted(1); err != nil {
		t.Fatalf("EnsureStarted: %v", err)
	}
	clock.t = start.Add(72*time.Hour - time.Second)

	days, err := svc.ElapsedDays(1)
	if err != nil {
		t.Fatalf("ElapsedDays: %v", err)
	}
	if days != 2 {
		t.Errorf("ElapsedDays one second before the 3-day mark = %d, want 2", days)
	}
}
