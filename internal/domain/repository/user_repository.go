// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medvantage/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Find retrieves every user record.
	Find(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their document id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert inserts the user keyed by email, or refreshes the existing
	// record's mutable fields when one already exists.
	Upsert(ctx context.Context, user *entity.User) error

	// UpdateRole sets the stored role of the user with the given document id.
	UpdateRole(ctx context.Context, id string, role entity.Role) error

	// UpdateRoleByEmail sets the stored role of the user with the given email.
	UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) error

	// Delete removes the user with the given document id.
	Delete(ctx context.Context, id string) error

	// EstimatedCount returns the approximate number of user records.
	EstimatedCount(ctx context.Context) (int64, error)
}
