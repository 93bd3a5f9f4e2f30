package model

import "time"

// ResetLog is an immutable audit record appended on every streak reset.
// Writes are best-effort; a failed append never fails the reset itself.
type ResetLog struct {
	BaseModel
	UserID  uint      `gorm:"index;not null" json:"userId"`
	ResetAt time.Time `gorm:"not null" json:"resetAt"`
}

func (ResetLog) TableName() string {
	return "reset_logs"
}
