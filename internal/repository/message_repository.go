package repository

import (
	"habit_streak_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	return r.DB.Create(msg).Error
}

// FindRecentByRoom returns the newest `limit` messages of a room in
// ascending creation order. Hidden messages are excluded unless
// includeHidden is set (admin view).
func (r *MessageRepository) FindRecentByRoom(roomID string, limit int, includeHidden bool) ([]model.Message, error) {
	query := r.DB.Preload("Sender").Where("room_id = ?", roomID)
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	// Take the newest N, then flip to chronological order.
	var msgs []model.Message
	err := query.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (r *MessageRepository) FindByID(id string) (*model.Message, error) {
	var msg model.Message
	err := r.DB.Preload("Sender").Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetHidden toggles the moderation soft-hide flag. Messages are never
// deleted.
func (r *MessageRepository) SetHidden(id string, hidden bool) error {
	return r.DB.Model(&model.Message{}).Where("id = ?", id).
		Update("hidden", hidden).Error
}
