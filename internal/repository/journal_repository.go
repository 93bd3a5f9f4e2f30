package repository

import (
	"fmt"
	"time"

	"habit_streak_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

// Upsert writes the note for (user, date), replacing an existing same-day
// entry.
func (r *JournalRepository) Upsert(userID uint, date, note string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(&model.Journal{UserID: userID, Date: date, Note: note}).Error
}

// FindByMonth returns the month's entries ordered by date, for the
// calendar dot view.
func (r *JournalRepository) FindByMonth(userID uint, year, month int) ([]model.Journal, error) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	// Day 0 of the following month is this month's last day.
	to := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	var entries []model.Journal
	err := r.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

// FindRecent returns the newest entries first, for the history list.
func (r *JournalRepository) FindRecent(userID uint, limit int) ([]model.Journal, error) {
	var entries []model.Journal
	err := r.DB.Where("user_id = ?", userID).
		Order("date DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
