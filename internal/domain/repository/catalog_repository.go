package repository

import (
	"context"
	"errors"

	"medvantage/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category lookup comes back empty.
var ErrCategoryNotFound = errors.New("category not found")

// ErrMedicineNotFound is returned when a medicine lookup comes back empty.
var ErrMedicineNotFound = errors.New("medicine not found")

// CategoryRepository defines persistence operations for medicine categories.
type CategoryRepository interface {
	// Find retrieves every category.
	Find(ctx context.Context) ([]*entity.Category, error)

	// FindBySlug retrieves a single category by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update replaces the mutable fields of the category with the given id.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category with the given id.
	Delete(ctx context.Context, id string) error
}

// MedicineRepository defines persistence operations for medicine listings.
type MedicineRepository interface {
	// Find retrieves medicine listings, optionally filtered by category slug.
	// An empty slug returns every listing.
	Find(ctx context.Context, categorySlug string) ([]*entity.Medicine, error)

	// FindByID retrieves a single medicine by its document id.
	FindByID(ctx context.Context, id string) (*entity.Medicine, error)

	// FindBySeller retrieves every listing owned by the seller email.
	FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error)

	// Create persists a new medicine listing.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// Update replaces the mutable fields of the listing with the given id.
	Update(ctx context.Context, medicine *entity.Medicine) error

	// Delete removes the listing with the given id.
	Delete(ctx context.Context, id string) error

	// EstimatedCount returns the approximate number of listings.
	EstimatedCount(ctx context.Context) (int64, error)
}
