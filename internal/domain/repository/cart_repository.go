package repository

import (
	"context"
	"errors"

	"medvantage/internal/domain/entity"
)

// ErrCartItemNotFound is returned when a cart item lookup comes back empty.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines persistence operations for shopping cart entries.
type CartRepository interface {
	// FindByUser retrieves every cart entry owned by the email.
	FindByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error)

	// FindByID retrieves a single cart entry by its document id.
	FindByID(ctx context.Context, id string) (*entity.CartItem, error)

	// Create persists a new cart entry.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of the cart entry with the given id.
	UpdateQuantity(ctx context.Context, id string, quantity int) error

	// Delete removes the cart entry with the given id.
	Delete(ctx context.Context, id string) error

	// DeleteByIDs removes every cart entry whose id appears in the list.
	// Returns the number of deleted documents.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)

	// DeleteByUser removes every cart entry owned by the email.
	// Returns the number of deleted documents.
	DeleteByUser(ctx context.Context, userEmail string) (int64, error)
}
