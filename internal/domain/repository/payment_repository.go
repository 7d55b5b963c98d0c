package repository

import (
	"context"

	"medvantage/internal/domain/entity"
)

// PaymentRepository defines persistence operations for settled payments.
type PaymentRepository interface {
	// Find retrieves every payment record, newest first.
	Find(ctx context.Context) ([]*entity.Payment, error)

	// FindByUser retrieves every payment made by the email, newest first.
	FindByUser(ctx context.Context, userEmail string) ([]*entity.Payment, error)

	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// EstimatedCount returns the approximate number of payment records.
	EstimatedCount(ctx context.Context) (int64, error)

	// TotalRevenue sums the amount of every payment record.
	TotalRevenue(ctx context.Context) (float64, error)
}
