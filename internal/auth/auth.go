// Package auth is the single authorization check invoked by the services
// before each state transition.
package auth

import (
	"fmt"

	"github.com/codetutors/code_tutors/internal/model"
)

// Role is what kind of user is acting.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTutor || r == RoleAdmin
}

// Actor identifies who is performing an operation. For students the ID is
// their student id; authentication itself happens upstream.
type Actor struct {
	ID   int64
	Role Role
}

// Action names an operation that requires authorization.
type Action string

const (
	ActionCreateBooking  Action = "booking.create"
	ActionDeleteBooking  Action = "booking.delete"
	ActionEditBooking    Action = "booking.edit"
	ActionViewAssignment Action = "assignment.view"
	ActionAssignTutor    Action = "assignment.assign"
	ActionManageProfiles Action = "directory.manage"
)

// Authorize checks whether actor may perform action on a resource owned by
// ownerID (the owning student's id, or zero when ownership is not
// relevant). Admins may do everything; students may create bookings and
// delete their own; assignment operations are admin-only.
func Authorize(actor Actor, action Action, ownerID int64) error {
	if actor.Role == RoleAdmin {
		return nil
	}

	switch action {
	case ActionCreateBooking:
		if actor.Role == RoleStudent {
			return nil
		}
	case ActionDeleteBooking:
		if actor.Role == RoleStudent && actor.ID == ownerID {
			return nil
		}
	}

	return fmt.Errorf("%s as %s: %w", action, actor.Role, model.ErrForbidden)
}
