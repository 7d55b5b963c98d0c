package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// AddCartItemInput defines the data for adding a medicine to a cart.
type AddCartItemInput struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// ListByUser returns the cart entries owned by the email.
	ListByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error)

	// Add puts a medicine into the user's cart, capturing its current price.
	Add(ctx context.Context, userEmail string, input *AddCartItemInput) (*entity.CartItem, error)

	// UpdateQuantity sets the quantity of a cart entry owned by the email.
	UpdateQuantity(ctx context.Context, id, userEmail string, quantity int) error

	// Remove deletes a cart entry owned by the email.
	Remove(ctx context.Context, id, userEmail string) error

	// Clear deletes every cart entry owned by the email and returns the count.
	Clear(ctx context.Context, userEmail string) (int64, error)
}
