package repository

import (
	"context"
	"errors"

	"medvantage/internal/domain/entity"
)

// ErrAdvertisementNotFound is returned when an advertisement lookup comes back empty.
var ErrAdvertisementNotFound = errors.New("advertisement not found")

// AdvertisementRepository defines persistence operations for seller advertisements.
type AdvertisementRepository interface {
	// Find retrieves advertisements. When activeOnly is true, only entries
	// currently toggled onto the storefront slider are returned.
	Find(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error)

	// FindBySeller retrieves every advertisement submitted by the seller email.
	FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error)

	// Create persists a new advertisement.
	Create(ctx context.Context, ad *entity.Advertisement) error

	// SetActive toggles the storefront visibility of the advertisement.
	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes the advertisement with the given id.
	Delete(ctx context.Context, id string) error
}
