package entity

import "time"

// Category groups medicines for browsing, keyed by a URL-friendly slug.
type Category struct {
	ID          string
	Name        string
	Slug        string
	ImageURL    string
	Description string
}

// Medicine is a single listing in the marketplace, owned by a seller.
type Medicine struct {
	ID              string
	Name            string
	GenericName     string
	ImageURL        string
	Description     string
	CategorySlug    string  // References Category.Slug.
	Company         string
	MassUnit        string  // e.g. "500mg", "100ml".
	PricePerUnit    float64
	DiscountPercent float64
	SellerEmail     string // Email of the owning seller.
	CreatedAt       time.Time
}

// DiscountedPrice returns the effective unit price after the listing discount.
func (m *Medicine) DiscountedPrice() float64 {
	if m.DiscountPercent <= 0 {
		return m.PricePerUnit
	}

	return m.PricePerUnit * (1 - m.DiscountPercent/100)
}
