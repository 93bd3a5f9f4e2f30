package repository

import (
	"time"

	"habit_streak_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// EnsureRow creates the per-user settings row if it does not exist yet.
// Conflicts on user_id are ignored so the call is idempotent.
func (r *SettingsRepository) EnsureRow(userID uint) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.UserSettings{UserID: userID}).Error
}

func (r *SettingsRepository) FindByUser(userID uint) (*model.UserSettings, error) {
	var s model.UserSettings
	err := r.DB.Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) SetStreakStart(userID uint, startAt time.Time) error {
	return r.DB.Model(&model.UserSettings{}).Where("user_id = ?", userID).
		Update("streak_started_at", startAt).Error
}
