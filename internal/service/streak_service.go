package service

import (
	"time"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/pkg/logger"
	"habit_streak_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// StreakSettingsRepo is the persistence needed by the streak state
// manager.
type StreakSettingsRepo interface {
	EnsureRow(userID uint) error
	FindByUser(userID uint) (*model.UserSettings, error)
	SetStreakStart(userID uint, startAt time.Time) error
}

// ResetAuditRepo keeps the immutable reset records.
type ResetAuditRepo interface {
	Append(userID uint, resetAt time.Time) error
	FindByUser(userID uint, limit int) ([]model.ResetLog, error)
}

// RoomTableRepo loads the cohort range table.
type RoomTableRepo interface {
	ListOrdered() ([]model.Room, error)
}

// StreakService owns the authoritative streak start timestamp.
type StreakService struct {
	Settings  StreakSettingsRepo
	ResetLogs ResetAuditRepo
	Rooms     RoomTableRepo
	Clock     Clock
}

func NewStreakService(settings StreakSettingsRepo, resetLogs ResetAuditRepo, rooms RoomTableRepo, clock Clock) *StreakService {
	return &StreakService{
		Settings:  settings,
		ResetLogs: resetLogs,
		Rooms:     rooms,
		Clock:     clock,
	}
}

// EnsureStarted returns the user's streak start, seeding it with the
// authoritative clock if absent. Idempotent: a second call without an
// intervening reset returns the same timestamp.
func (s *StreakService) EnsureStarted(userID uint) (time.Time, error) {
	if err := s.Settings.EnsureRow(userID); err != nil {
		return time.Time{}, err
	}

	settings, err := s.Settings.FindByUser(userID)
	if err != nil {
		return time.Time{}, err
	}
	if settings.StreakStartedAt != nil {
		return *settings.StreakStartedAt, nil
	}

	now, authoritative := s.Clock.Now()
	if !authoritative {
		logger.Log.Warn("seeding streak start from local clock", zap.Uint("userId", userID))
	}
	if err := s.Settings.SetStreakStart(userID, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// Reset unconditionally overwrites the streak start with the current
// authoritative time and returns it so callers need no re-fetch. The
// audit record is best-effort: its failure is logged, never propagated.
func (s *StreakService) Reset(userID uint) (time.Time, error) {
	if err := s.Settings.EnsureRow(userID); err != nil {
		return time.Time{}, err
	}

	now, _ := s.Clock.Now()
	if err := s.Settings.SetStreakStart(userID, now); err != nil {
		return time.Time{}, err
	}

	if err := s.ResetLogs.Append(userID, now); err != nil {
		logger.Log.Error("failed to append reset log", zap.Uint("userId", userID), zap.Error(err))
	}

	monitoring.StreakResetCounter.Inc()
	return now, nil
}

// StreakStatus is everything the home screen derives from the start
// timestamp.
type StreakStatus struct {
	StartedAt time.Time      `json:"startedAt"`
	Elapsed   streak.Elapsed `json:"elapsed"`
	HMS       string         `json:"hms"`
	Label     string         `json:"label"`
	Title     string         `json:"title"`
	Rank      streak.Rank    `json:"rank"`
	Room      *model.Room    `json:"room"`
}

// Status resolves the full derived state for a user, ensuring the streak
// is started first.
func (s *StreakService) Status(userID uint) (*StreakStatus, error) {
	startedAt, err := s.EnsureStarted(userID)
	if err != nil {
		return nil, err
	}

	now, _ := s.Clock.Now()
	elapsed := streak.ElapsedSince(startedAt, now)

	rooms, err := s.Rooms.ListOrdered()
	if err != nil {
		return nil, err
	}

	return &StreakStatus{
		StartedAt: startedAt,
		Elapsed:   elapsed,
		HMS:       elapsed.HMS(),
		Label:     elapsed.Label(),
		Title:     streak.TitleForDays(elapsed.Days),
		Rank:      streak.RankForDays(elapsed.Days),
		Room:      streak.RoomForDays(elapsed.Days, rooms),
	}, nil
}

// ResetHistory lists a user's past resets, newest first.
func (s *StreakService) ResetHistory(userID uint, limit int) ([]model.ResetLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ResetLogs.FindByUser(userID, limit)
}

// ElapsedDays is a light variant of Status for callers that only need the
// day count.
func (s *StreakService) ElapsedDays(userID uint) (int, error) {
	startedAt, err := s.EnsureStarted(userID)
	if err != nil {
		return 0, err
	}
	now, _ := s.Clock.Now()
	return streak.ElapsedSince(startedAt, now).Days, nil
}
