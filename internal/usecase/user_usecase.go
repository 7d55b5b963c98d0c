// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register (or re-register) an account.
type RegisterUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photoUrl"`
}

// UpdateRoleInput defines the data required to change a stored role.
// The role always comes from the request body; it is never inferred from
// previous request state.
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput reports the upsert-registration result.
type RegisterOutput struct {
	User          *entity.User
	AlreadyExists bool
}

// RoleChangeOutput reports a role change and its cascade.
type RoleChangeOutput struct {
	Email           string
	Role            entity.Role
	RequestsDeleted int64 // Seller requests erased when the role was reset to plain user.
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// RegisterUser upserts an account by email. Registering an existing email
	// performs no write and reports AlreadyExists.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUserByEmail returns the account stored under the email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateRoleByID changes the stored role of the account with the given id.
	// Resetting the role to plain user erases the account's seller requests.
	UpdateRoleByID(ctx context.Context, id string, input *UpdateRoleInput) (*RoleChangeOutput, error)

	// UpdateRoleByEmail behaves like UpdateRoleByID but is keyed by email.
	UpdateRoleByEmail(ctx context.Context, email string, input *UpdateRoleInput) (*RoleChangeOutput, error)

	// DeleteUser removes the account with the given id.
	DeleteUser(ctx context.Context, id string) error
}
