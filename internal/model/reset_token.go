package model

import "time"

// ResetToken is a single-use, time-bounded password reset token.
// A token is valid while Used is false and ExpiresAt has not passed.
type ResetToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Token     string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table that stores reset tokens.
func (ResetToken) TableName() string { return "password_reset_tokens" }

// Expired reports whether the token is past its expiration at now.
func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
