package model

import "time"

// Message is an append-only chat row scoped to a room. There is no edit;
// moderation sets the hidden flag instead of deleting.
type Message struct {
	UUIDBase
	RoomID      string    `gorm:"index;index:idx_room_created;type:varchar(36);not null" json:"roomId"`
	CreatedAt   time.Time `gorm:"index:idx_room_created" json:"createdAt"`
	SenderID    uint      `gorm:"index;not null" json:"senderId"`
	Sender      User      `gorm:"foreignKey:SenderID" json:"sender"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ClientMsgID string    `gorm:"size:50;index" json:"clientMsgId"` // client correlation id, echoed in the push event
	Hidden      bool      `gorm:"default:false" json:"hidden"`
}

func (Message) TableName() string {
	return "messages"
}

// MaxMessageLen caps chat message content at 2000 characters.
const MaxMessageLen = 2000
