package model

import "time"

// Notification is an append-only message for a user, or for everyone when UserID is nil.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Date      time.Time `json:"date" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription is a web push endpoint registered by a user's browser.
// (UserID, Endpoint) is unique.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_subscription_user_endpoint,priority:1"`
	Endpoint  string    `json:"endpoint" gorm:"size:500;not null;uniqueIndex:idx_subscription_user_endpoint,priority:2"`
	P256dh    string    `json:"p256dh" gorm:"size:300;not null"`
	Auth      string    `json:"auth" gorm:"size:300;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
