// Package payment provides the Stripe-backed implementation of the payment gateway.
package payment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"medvantage/config"
	"medvantage/internal/domain/service"
)

// stripeGateway implements service.PaymentGateway on the Stripe payment-intent API.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{api: api}, nil
}

// CreateIntent registers a payment intent with Stripe and returns its client secret.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
