package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"displayName"`
	AvatarURL    string `json:"avatarUrl"`

	Tasks       []Task           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Collections []TaskCollection `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type UserReminder struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Type    string `json:"type"` // task_due, session_upcoming
	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// UserPreferences is a singleton row per user.
type UserPreferences struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null" json:"userId"`
	PreferredLanguages string `json:"preferredLanguages"` // comma-separated
	// No column default: an explicit false must survive the insert, and the
	// preferences handler already fills in the enabled default.
	ReminderEnabled bool   `json:"reminderEnabled"`
	ReminderTime    string `gorm:"default:09:00" json:"reminderTime"`
	Timezone        string `gorm:"default:UTC" json:"timezone"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
