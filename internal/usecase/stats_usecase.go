package usecase

import "context"

// AdminStats is a coarse dashboard snapshot built from estimated collection counts.
type AdminStats struct {
	Users          int64   `json:"users"`
	Medicines      int64   `json:"medicines"`
	Payments       int64   `json:"payments"`
	SellerRequests int64   `json:"sellerRequests"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// StatsUsecase defines the interface for the admin dashboard snapshot.
type StatsUsecase interface {
	// AdminStats gathers estimated counts and total revenue.
	AdminStats(ctx context.Context) (*AdminStats, error)
}
