// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level stored on a user record.
type Role string

const (
	// RoleUser indicates a regular customer role.
	RoleUser Role = "user"
	// RoleSeller indicates a seller role, allowed to list medicines and advertisements.
	RoleSeller Role = "seller"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}
