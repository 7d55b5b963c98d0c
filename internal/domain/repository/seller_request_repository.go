package repository

import (
	"context"
	"errors"
	"time"

	"medvantage/internal/domain/entity"
)

// ErrSellerRequestNotFound is returned when a seller request lookup comes back empty.
var ErrSellerRequestNotFound = errors.New("seller request not found")

// SellerRequestRepository defines persistence operations for seller onboarding requests.
type SellerRequestRepository interface {
	// Find retrieves every seller request, newest first.
	Find(ctx context.Context) ([]*entity.SellerRequest, error)

	// FindByID retrieves a single request by its document id.
	FindByID(ctx context.Context, id string) (*entity.SellerRequest, error)

	// FindPendingByEmail retrieves the pending request for an email, if any.
	FindPendingByEmail(ctx context.Context, email string) (*entity.SellerRequest, error)

	// Create persists a new seller request.
	Create(ctx context.Context, request *entity.SellerRequest) error

	// UpdateStatus transitions the request with the given id and stamps the processing time.
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, processedAt time.Time) error

	// DeleteByEmail removes every request owned by the email, regardless of status.
	// Returns the number of deleted documents.
	DeleteByEmail(ctx context.Context, email string) (int64, error)

	// EstimatedCount returns the approximate number of seller requests.
	EstimatedCount(ctx context.Context) (int64, error)
}
