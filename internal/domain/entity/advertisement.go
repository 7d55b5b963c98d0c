package entity

import "time"

// Advertisement is a seller-submitted banner for a medicine. Only entries
// toggled active by an admin are shown on the storefront slider.
type Advertisement struct {
	ID           string
	SellerEmail  string
	MedicineName string
	ImageURL     string
	Description  string
	Active       bool
	CreatedAt    time.Time
}
