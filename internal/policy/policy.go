// Package policy decides which organizational reference a user carries given
// their role. It has no dependencies on storage and is shared by the create
// and update paths.
package policy

import (
	"fmt"

	apperrors "roster/internal/errors"
	"roster/internal/model"
)

// Assignment is the normalized placement of a user in the hierarchy.
type Assignment struct {
	ZoneID       *uint
	DependencyID *uint
}

// Resolve applies the role table:
//
//	ZONE_CHIEF                  zone required, dependency dropped
//	ADMIN                       neither allowed
//	DEPENDENCY_CHIEF / OFFICER  dependency required, zone dropped
//
// A reference that the role does not use is nulled for non-admin roles and
// rejected for ADMIN.
func Resolve(role model.Role, zoneID, dependencyID *uint) (Assignment, error) {
	switch role {
	case model.RoleZoneChief:
		if !present(zoneID) {
			return Assignment{}, fmt.Errorf("%w: a zone chief must have zone_id", apperrors.ErrMissingRequiredField)
		}
		return Assignment{ZoneID: copyID(zoneID)}, nil

	case model.RoleAdmin:
		if present(zoneID) || present(dependencyID) {
			return Assignment{}, fmt.Errorf("%w: an admin must not have zone_id or dependency_id", apperrors.ErrConflictingFields)
		}
		return Assignment{}, nil

	case model.RoleDependencyChief, model.RoleOfficer:
		if !present(dependencyID) {
			return Assignment{}, fmt.Errorf("%w: role %s must have dependency_id", apperrors.ErrMissingRequiredField, role)
		}
		return Assignment{DependencyID: copyID(dependencyID)}, nil

	default:
		return Assignment{}, fmt.Errorf("%w %q: must be one of %v", apperrors.ErrInvalidRole, role, model.Roles)
	}
}

// present treats zero as absent: primary keys start at 1.
func present(id *uint) bool {
	return id != nil && *id != 0
}

func copyID(id *uint) *uint {
	v := *id
	return &v
}
