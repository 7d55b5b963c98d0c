package usecase

import (
	"context"

	"medvantage/internal/domain/entity"
)

// CreateIntentInput defines the data for registering a payment intent.
// Amount is in the smallest currency unit (e.g. cents).
type CreateIntentInput struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreateIntentOutput returns the processor handle the client confirms with.
type CreateIntentOutput struct {
	IntentID     string
	ClientSecret string
}

// SettlePaymentInput defines the data recorded once a client confirms payment.
type SettlePaymentInput struct {
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds" validate:"required,min=1"`
	MedicineNames []string `json:"medicineNames"`
}

// SettlePaymentOutput reports the settlement and its cascade.
type SettlePaymentOutput struct {
	Payment      *entity.Payment
	CartsCleared int64 // Number of cart entries removed for the paid items.
}

// PaymentUsecase defines the interface for the payment settlement workflow.
type PaymentUsecase interface {
	// CreateIntent registers a payment intent with the processor.
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)

	// Settle records a confirmed payment and removes the purchased cart
	// entries in the same transaction.
	Settle(ctx context.Context, userEmail string, input *SettlePaymentInput) (*SettlePaymentOutput, error)

	// ListByUser returns the payments made by the email, newest first.
	ListByUser(ctx context.Context, userEmail string) ([]*entity.Payment, error)

	// List returns every payment, newest first.
	List(ctx context.Context) ([]*entity.Payment, error)
}
