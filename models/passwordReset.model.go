package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset stores a one-time reset token emailed to the user
type PasswordReset struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"token" gorm:"unique;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `gorm:"default:false"`
}
