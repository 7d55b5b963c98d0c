// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The email is the natural key: registration
// upserts by email and the authorization gate looks users up by the email
// carried in their token.
type User struct {
	ID        string    // Hex representation of the stored document id.
	Email     string    // Unique login identifier; at most one record per email.
	Name      string    // Display name.
	PhotoURL  string    // Reference to the user's avatar image.
	Role      Role      // Stored privilege level, consulted on every protected request.
	CreatedAt time.Time // Timestamp of when this account was first registered.
}

// IsAdmin reports whether the stored role grants administrator privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSeller reports whether the stored role grants seller privileges.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
