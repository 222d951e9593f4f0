package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Shift is a named working time window for a dependency (turno).
type Shift struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	StartTime    datatypes.Time `json:"start_time" gorm:"not null"`
	EndTime      datatypes.Time `json:"end_time" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	DependencyID uint           `json:"dependency_id" gorm:"not null;index" validate:"required"`
	RegimeID     *uint          `json:"regime_id" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Check rejects zero-length shifts. Overnight shifts (end before start) are allowed.
func (s *Shift) Check() error {
	if s.StartTime == s.EndTime {
		return errors.New("start_time and end_time must differ")
	}
	return nil
}

// WorkRegime describes a rotation pattern such as 12x36 (régimen horario).
type WorkRegime struct {
	ID                    uint            `json:"id" gorm:"primaryKey"`
	Name                  string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	WorkHours             decimal.Decimal `json:"work_hours" gorm:"type:decimal(5,2);not null"`
	RestHours             decimal.Decimal `json:"rest_hours" gorm:"type:decimal(5,2);not null"`
	AllowsOddEvenRotation bool            `json:"allows_odd_even_rotation" gorm:"default:false"`
	AllowsHalfShift       bool            `json:"allows_half_shift" gorm:"default:false"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

var halfHour = decimal.NewFromFloat(0.5)

// Check validates hour counts: positive, at most 168, in half hour steps.
func (r *WorkRegime) Check() error {
	week := decimal.NewFromInt(168)
	for _, h := range []decimal.Decimal{r.WorkHours, r.RestHours} {
		if h.LessThanOrEqual(decimal.Zero) || h.GreaterThan(week) {
			return errors.New("work_hours and rest_hours must be between 0 and 168")
		}
		if !h.Mod(halfHour).IsZero() {
			return errors.New("hours must be multiples of 0.5")
		}
	}
	return nil
}
