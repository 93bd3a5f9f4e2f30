package model

import (
	"time"
)

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	DisplayName  string    `gorm:"size:100;not null" json:"displayName"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	Role         UserRole  `gorm:"type:enum('member','admin');default:'member'" json:"role"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	RegisteredAt time.Time `gorm:"not null" json:"registeredAt"`
	Banned       bool      `gorm:"default:false" json:"banned"`
	Muted        bool      `gorm:"default:false" json:"muted"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// UserSettings holds the per-user streak state. Exactly one row per user;
// streak_started_at is null until the first EnsureStarted.
type UserSettings struct {
	BaseModel
	UserID          uint       `gorm:"uniqueIndex;not null" json:"userId"`
	StreakStartedAt *time.Time `json:"streakStartedAt"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
