package model

import "time"

// Vehicle is a mobile unit assigned to a dependency.
type Vehicle struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Plate        string     `json:"plate" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	Brand        string     `json:"brand" gorm:"size:50"`
	Model        string     `json:"model" gorm:"size:50"`
	Year         int        `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	Status       string     `json:"status" gorm:"size:50"`
	NextService  *time.Time `json:"next_service"`
	DependencyID *uint      `json:"dependency_id" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// VehicleService is a maintenance or service record for a vehicle (servicio).
type VehicleService struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string     `json:"description" gorm:"type:text"`
	Date        *time.Time `json:"date"`
	VehicleID   uint       `json:"vehicle_id" gorm:"not null;index" validate:"required"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
