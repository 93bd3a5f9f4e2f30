package model

import "time"

// Room is a chat cohort bucketed by elapsed-day range. Ranges are
// contiguous and non-overlapping over [0, ∞); MaxDays nil means unbounded.
type Room struct {
	UUIDBase
	Code    string `gorm:"size:20;unique;not null" json:"code"`
	Label   string `gorm:"size:100;not null" json:"label"`
	MinDays int    `gorm:"not null" json:"minDays"`
	MaxDays *int   `json:"maxDays"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomMember records room membership. The unique index on user_id makes
// membership exclusive: switching rooms deletes the old row first.
type RoomMember struct {
	UserID   uint      `gorm:"primaryKey" json:"userId"`
	RoomID   string    `gorm:"index;type:varchar(36);not null" json:"roomId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (RoomMember) TableName() string {
	return "room_members"
}
