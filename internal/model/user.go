package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Role is the hierarchical role of a user inside the organization.
type Role string

const (
	RoleZoneChief       Role = "ZONE_CHIEF"
	RoleAdmin           Role = "ADMIN"
	RoleOfficer         Role = "OFFICER"
	RoleDependencyChief Role = "DEPENDENCY_CHIEF"
)

// Roles lists every valid role.
var Roles = []Role{RoleZoneChief, RoleAdmin, RoleOfficer, RoleDependencyChief}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User status values.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// User represents a member of the organization and their account.
// Exactly one of ZoneID / DependencyID is set, depending on Role; admins have neither.
type User struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Rank          string     `json:"rank" gorm:"size:50;not null"`
	Name          string     `json:"name" gorm:"size:150;not null"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash  string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role          Role       `json:"role" gorm:"type:varchar(50);not null;index"`
	AdmissionDate *time.Time `json:"admission_date"`
	DependencyID  *uint      `json:"dependency_id" gorm:"index"`
	ZoneID        *uint      `json:"zone_id" gorm:"index"`
	ShiftID       *uint      `json:"shift_id" gorm:"index"`
	DutyID        *uint      `json:"duty_id" gorm:"index"`
	Status        string     `json:"status" gorm:"size:50"`
	IsAdmin       bool       `json:"is_admin" gorm:"default:false"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// OptionalID is a nullable foreign key in a partial update. Set distinguishes an
// absent field from an explicit null. Numbers, numeric strings, "" and null are accepted.
type OptionalID struct {
	Set   bool
	Value *uint
}

// NewOptionalID returns a set OptionalID holding id.
func NewOptionalID(id uint) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		raw = s
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	id := uint(n)
	o.Value = &id
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Or returns the new value when set, otherwise current.
func (o OptionalID) Or(current *uint) *uint {
	if o.Set {
		return o.Value
	}
	return current
}

// Ptr returns the value regardless of Set.
func (o OptionalID) Ptr() *uint {
	return o.Value
}

// NonZero is Ptr with an id of 0 treated as absent.
func (o OptionalID) NonZero() *uint {
	if o.Value == nil || *o.Value == 0 {
		return nil
	}
	return o.Value
}
