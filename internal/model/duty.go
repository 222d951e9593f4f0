package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Guard is a duty assignment for a user over a time range (guardia).
type Guard struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index" validate:"required"`
	StartsAt  time.Time `json:"starts_at" gorm:"not null"`
	EndsAt    time.Time `json:"ends_at" gorm:"not null"`
	Kind      string    `json:"kind" gorm:"size:50;not null" validate:"required,max=50"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Check requires a non-empty, forward time range.
func (g *Guard) Check() error {
	if g.StartsAt.IsZero() || g.EndsAt.IsZero() {
		return errors.New("starts_at and ends_at are required")
	}
	if !g.EndsAt.After(g.StartsAt) {
		return errors.New("ends_at must be after starts_at")
	}
	return nil
}

// Leave kinds with special handling.
const LeaveKindMedical = "MEDICAL"

// Leave status values.
const (
	LeaveStatusRequested = "REQUESTED"
	LeaveStatusApproved  = "APPROVED"
	LeaveStatusRejected  = "REJECTED"
)

// Leave is a leave of absence request (licencia).
type Leave struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index" validate:"required"`
	StartDate datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate   datatypes.Date `json:"end_date" gorm:"not null"`
	Kind      string         `json:"kind" gorm:"size:50;not null" validate:"required,max=50"`
	Reason    string         `json:"reason" gorm:"size:50;not null" validate:"required,max=50"`
	Status    string         `json:"status" gorm:"size:50;not null" validate:"omitempty,oneof=REQUESTED APPROVED REJECTED"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Check requires both dates and a non-inverted range. New leaves start as REQUESTED.
func (l *Leave) Check() error {
	start, end := time.Time(l.StartDate), time.Time(l.EndDate)
	if start.IsZero() || end.IsZero() {
		return errors.New("start_date and end_date are required")
	}
	if end.Before(start) {
		return errors.New("end_date must not be before start_date")
	}
	if l.Status == "" {
		l.Status = LeaveStatusRequested
	}
	return nil
}

// Duty is a job function a user can be assigned to (función).
type Duty struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"size:255;not null" validate:"required,max=255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for duties.
func (Duty) TableName() string { return "duties" }
