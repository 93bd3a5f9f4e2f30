package service

import (
	"time"

	"habit_streak_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Clock supplies the current time for streak seeding and resets. The bool
// reports whether the value came from the authoritative source.
type Clock interface {
	Now() (time.Time, bool)
}

// ClockService reads the database server clock so streak timestamps do
// not depend on whichever app instance handled the request (the stand-in
// for the original deployment's server_now() procedure). If the query
// fails it falls back to process-local time — a degraded path, logged as
// such, since local clocks can drift or be manipulated.
type ClockService struct {
	DB *gorm.DB
}

func NewClockService(db *gorm.DB) *ClockService {
	return &ClockService{DB: db}
}

func (s *ClockService) Now() (time.Time, bool) {
	var now time.Time
	if err := s.DB.Raw("SELECT NOW(3)").Scan(&now).Error; err != nil || now.IsZero() {
		logger.Log.Warn("authoritative clock unavailable, falling back to local time",
			zap.Error(err))
		return time.Now(), false
	}
	return now, true
}
