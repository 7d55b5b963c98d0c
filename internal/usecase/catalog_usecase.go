package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// CategoryInput defines the data for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// MedicineInput defines the data for creating or updating a medicine listing.
type MedicineInput struct {
	Name            string  `json:"name" validate:"required"`
	GenericName     string  `json:"genericName"`
	ImageURL        string  `json:"imageUrl"`
	Description     string  `json:"description"`
	CategorySlug    string  `json:"categorySlug" validate:"required"`
	Company         string  `json:"company"`
	MassUnit        string  `json:"massUnit"`
	PricePerUnit    float64 `json:"pricePerUnit" validate:"required,gt=0"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
}

// CatalogUsecase defines the interface for category and medicine operations.
type CatalogUsecase interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns the category with the given slug.
	GetCategory(ctx context.Context, slug string) (*entity.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory replaces the category with the given id.
	UpdateCategory(ctx context.Context, id string, input *CategoryInput) error

	// DeleteCategory removes the category with the given id.
	DeleteCategory(ctx context.Context, id string) error

	// ListMedicines returns listings, optionally filtered by category slug.
	ListMedicines(ctx context.Context, categorySlug string) ([]*entity.Medicine, error)

	// GetMedicine returns the listing with the given id.
	GetMedicine(ctx context.Context, id string) (*entity.Medicine, error)

	// ListMedicinesBySeller returns the listings owned by the seller email.
	ListMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error)

	// CreateMedicine persists a listing owned by the seller email.
	CreateMedicine(ctx context.Context, sellerEmail string, input *MedicineInput) (*entity.Medicine, error)

	// UpdateMedicine replaces the listing. Only the owning seller may update it.
	UpdateMedicine(ctx context.Context, id, sellerEmail string, input *MedicineInput) error

	// DeleteMedicine removes the listing. Only the owning seller may delete it.
	DeleteMedicine(ctx context.Context, id, sellerEmail string) error
}
