// Copyright (c) 2026 Campus. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Full administrative access: manages students, courses, and enrollments
	RoleAdmin Role = "admin"

	// Default role for registered students: self-service profile and enrollment
	RoleStudent Role = "student"
)

// IsValid reports whether the role is one of the known role values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// In reports whether the role is a member of the allowed set.
//
// An empty role never matches: an identity whose token carries no role claim
// is denied by every role gate.
func (r Role) In(allowed ...Role) bool {
	if r == "" {
		return false
	}
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}
