package model

import "time"

// Headquarters is the top of the organization tree (jefatura).
type Headquarters struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Zones []Zone `json:"zones,omitempty" gorm:"foreignKey:HeadquartersID" validate:"-"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Headquarters) TableName() string { return "headquarters" }

// Zone groups dependencies under a headquarters. A zone may itself operate
// from one of its dependencies (OwnDependencyID).
type Zone struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description     string    `json:"description" gorm:"type:text"`
	HeadquartersID  uint      `json:"headquarters_id" gorm:"not null;index" validate:"required"`
	OwnDependencyID *uint     `json:"own_dependency_id" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Dependencies []Dependency `json:"dependencies,omitempty" gorm:"foreignKey:ZoneID" validate:"-"`
}

// Dependency is an operational unit (station, office) that users and shifts belong to.
type Dependency struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	ZoneID      *uint     `json:"zone_id" gorm:"index"`
	RegimeID    *uint     `json:"regime_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName avoids gorm's "dependencies" vs "dependency" ambiguity across dialects.
func (Dependency) TableName() string { return "dependencies" }
