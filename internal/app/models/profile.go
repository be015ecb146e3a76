package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile defines a principal's profile based on the 'profiles' table.
// The role field here is the authoritative source; the session token's
// role claim is only a provisioning-race fallback.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Principal is an authenticated actor with a resolved role, as carried
// through request handling. Role resolution happens once per session and
// the result is cached for the session's duration.
type Principal struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     Role
}
