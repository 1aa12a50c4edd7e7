package marketplace

import "strings"

// Role is immutable once a user is created.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleWorker Role = "worker"
)

func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleWorker:
		return true
	}
	return false
}

// SelfRegistrable reports whether the role can be chosen at sign-up.
// Admins only come from bootstrap seeding.
func (r Role) SelfRegistrable() bool {
	return r == RoleOwner || r == RoleWorker
}
