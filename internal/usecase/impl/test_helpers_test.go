package impl

import (
	"io"
	"log/slog"

	"medvantage/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(currency string) *config.Config {
	cfg := &config.Config{}
	cfg.Stripe = config.StripeConfig{
		SecretKey: "sk_test_fixture",
		Currency:  currency,
	}

	return cfg
}
