package models

// Role is the coarse authorization category of a principal.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	// RoleUnknown means no role could be resolved; the principal is
	// treated as read-only, never as an error.
	RoleUnknown Role = "unknown"
)

// ParseRole accepts only the two literal role values. Anything else,
// including an empty string or values like "admin", maps to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent
	case RoleFaculty:
		return RoleFaculty
	default:
		return RoleUnknown
	}
}

// CanWrite reports whether the role may create or delete rows at all.
// Ownership checks on delete are separate.
func (r Role) CanWrite() bool {
	return r == RoleFaculty
}
