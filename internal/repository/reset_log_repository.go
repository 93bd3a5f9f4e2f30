package repository

import (
	"time"

	"habit_streak_backend/internal/model"

	"gorm.io/gorm"
)

type ResetLogRepository struct {
	DB *gorm.DB
}

func NewResetLogRepository(db *gorm.DB) *ResetLogRepository {
	return &ResetLogRepository{DB: db}
}

func (r *ResetLogRepository) Append(userID uint, resetAt time.Time) error {
	return r.DB.Create(&model.ResetLog{UserID: userID, ResetAt: resetAt}).Error
}

func (r *ResetLogRepository) FindByUser(userID uint, limit int) ([]model.ResetLog, error) {
	var logs []model.ResetLog
	err := r.DB.Where("user_id = ?", userID).
		Order("reset_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
