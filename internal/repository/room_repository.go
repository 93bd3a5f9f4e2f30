package repository

import (
	"habit_streak_backend/internal/model"

	"gorm.io/gorm"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

// ListOrdered returns all rooms ascending by min_days, the order the
// range lookup expects.
func (r *RoomRepository) ListOrdered() ([]model.Room, error) {
	var rooms []model.Room
	err := r.DB.Order("min_days ASC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) FindByID(id string) (*model.Room, error) {
	var room model.Room
	err := r.DB.Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Join switches the user's exclusive membership: delete any prior row,
// then insert the new one. Not atomic; a brief zero-membership window is
// acceptable.
func (r *RoomRepository) Join(roomID string, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.RoomMember{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.RoomMember{RoomID: roomID, UserID: userID}).Error
	})
}

func (r *RoomRepository) Membership(userID uint) (*model.RoomMember, error) {
	var m model.RoomMember
	err := r.DB.Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
