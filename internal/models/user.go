package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/review-catalog/internal/policy"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID                 uuid.UUID   `json:"id" db:"user_id"`                                          // Primary key
	Username               string      `json:"username" db:"username"`                                   // Unique display key
	Email                  string      `json:"email" db:"email"`                                         // Unique identity key
	FirstName              string      `json:"first_name" db:"first_name"`                               // Optional first name
	LastName               string      `json:"last_name" db:"last_name"`                                 // Optional last name
	Bio                    string      `json:"bio" db:"bio"`                                             // Free-form profile text
	Role                   policy.Role `json:"role" db:"role"`                                           // user, moderator or admin
	Superuser              bool        `json:"is_superuser" db:"is_superuser"`                           // Elevated regardless of role
	ConfirmationCode       *string     `json:"-" db:"confirmation_code"`                                 // bcrypt hash of the one-time code
	ConfirmationCodeActive bool        `json:"confirmation_code_active" db:"confirmation_code_active"`   // Code not yet consumed
	CreatedAt              time.Time   `json:"created_at" db:"created_at"`                               // Creation timestamp
	UpdatedAt              time.Time   `json:"updated_at" db:"updated_at"`                               // Last update timestamp
}

// Actor converts the record into the identity the policy layer evaluates.
func (u *UserDB) Actor() *policy.Actor {
	if u == nil {
		return nil
	}
	return &policy.Actor{
		ID:        u.UserID,
		Role:      u.Role,
		Superuser: u.Superuser,
	}
}

// UserWrite carries the fields persisted when an admin creates a user.
type UserWrite struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Role      policy.Role
}

// UserUpdate carries the fields of a user update. Nil pointers keep the
// stored value.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *policy.Role
}
