package model

import "time"

// UniformItem is a piece of uniform issued to a user (prenda).
type UniformItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Size        string    `json:"size" gorm:"size:20"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      *uint     `json:"user_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
