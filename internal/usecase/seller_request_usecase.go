package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// SubmitSellerRequestInput defines the data a user supplies to apply for the seller role.
type SubmitSellerRequestInput struct {
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// DecideSellerRequestInput defines the admin decision on a pending request.
type DecideSellerRequestInput struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// DecideSellerRequestOutput reports the decision and its cascade.
type DecideSellerRequestOutput struct {
	Request      *entity.SellerRequest
	RolePromoted bool // True when the owning account was promoted to seller.
}

// SellerRequestUsecase defines the interface for the seller onboarding workflow.
type SellerRequestUsecase interface {
	// Submit files a seller request for the authenticated email. Only plain
	// users without a pending request may submit.
	Submit(ctx context.Context, email string, input *SubmitSellerRequestInput) (*entity.SellerRequest, error)

	// List returns every seller request, newest first.
	List(ctx context.Context) ([]*entity.SellerRequest, error)

	// Decide approves or rejects the request. Approval promotes the owning
	// account to the seller role in the same transaction.
	Decide(ctx context.Context, id string, input *DecideSellerRequestInput) (*DecideSellerRequestOutput, error)
}
