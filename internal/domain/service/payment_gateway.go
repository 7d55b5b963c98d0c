package service

import "context"

// PaymentIntent is the processor-side handle a client needs to confirm a payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway defines the capability interface over the external payment
// processor. Amounts are in the smallest currency unit (e.g. cents).
type PaymentGateway interface {
	// CreateIntent registers a payment intent for the amount and returns the
	// client secret the frontend uses to confirm it.
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}
