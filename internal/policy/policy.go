package policy

import "github.com/google/uuid"

// Role is a user's privilege level.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Action is the kind of operation requested against a resource.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate        // full replace
	ActionPartialUpdate // correction
	ActionDelete
)

// Resource is the class of entity an action targets.
type Resource int

const (
	// ResourceCatalog covers categories, genres and titles.
	ResourceCatalog Resource = iota
	// ResourceFeedback covers reviews and comments.
	ResourceFeedback
	// ResourceUsers covers user-management operations.
	ResourceUsers
)

// Decision is the result of an authorization check.
type Decision int

const (
	Allow Decision = iota
	// Unauthorized means the action needs an authenticated actor.
	Unauthorized
	// Forbidden means the actor is authenticated but lacks privilege
	// or ownership.
	Forbidden
)

// Actor identifies the requesting user for authorization purposes.
// A nil *Actor is an anonymous caller.
type Actor struct {
	ID        uuid.UUID
	Role      Role
	Superuser bool
}

// IsAdmin reports elevated privilege: the admin role or the superuser flag.
func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Superuser
}

// IsModerator reports the moderator role.
func (a *Actor) IsModerator() bool {
	return a.Role == RoleModerator
}

// Authorize decides whether an actor may perform an action on a resource.
//
// Catalog resources are world-readable and admin-writable. Feedback
// resources are world-readable; any authenticated actor may create, the
// author alone may partially update, and the author, a moderator or an
// admin may fully replace or delete. User management is admin-only for
// every action; the "self" sub-resource is handled by the caller and only
// requires authentication.
//
// owner is the authoring user of the target resource, when the resource
// class distinguishes ownership; pass nil otherwise.
func Authorize(actor *Actor, action Action, resource Resource, owner *uuid.UUID) Decision {
	if resource == ResourceUsers {
		if actor == nil {
			return Unauthorized
		}
		if !actor.IsAdmin() {
			return Forbidden
		}
		return Allow
	}

	if action == ActionList || action == ActionRetrieve {
		return Allow
	}

	if actor == nil {
		return Unauthorized
	}

	switch resource {
	case ResourceCatalog:
		if actor.IsAdmin() {
			return Allow
		}
		return Forbidden

	case ResourceFeedback:
		switch action {
		case ActionCreate:
			return Allow
		case ActionPartialUpdate:
			// Corrections are for the author alone, moderators included.
			if owner != nil && *owner == actor.ID {
				return Allow
			}
			return Forbidden
		case ActionUpdate, ActionDelete:
			if owner != nil && *owner == actor.ID {
				return Allow
			}
			if actor.IsModerator() || actor.IsAdmin() {
				return Allow
			}
			return Forbidden
		}
	}

	return Forbidden
}
