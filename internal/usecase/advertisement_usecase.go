package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// AdvertisementInput defines the data a seller supplies for a banner.
type AdvertisementInput struct {
	MedicineName string `json:"medicineName" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"required,url"`
	Description  string `json:"description"`
}

// ToggleAdvertisementInput defines the admin toggle for storefront visibility.
type ToggleAdvertisementInput struct {
	Active *bool `json:"active" validate:"required"`
}

// AdvertisementUsecase defines the interface for advertisement operations.
type AdvertisementUsecase interface {
	// List returns advertisements; activeOnly limits to storefront entries.
	List(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error)

	// ListBySeller returns the advertisements submitted by the seller email.
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error)

	// Submit files a new advertisement for the seller email. New entries are
	// inactive until an admin toggles them onto the storefront.
	Submit(ctx context.Context, sellerEmail string, input *AdvertisementInput) (*entity.Advertisement, error)

	// SetActive toggles the storefront visibility of an advertisement.
	SetActive(ctx context.Context, id string, active bool) error
}
