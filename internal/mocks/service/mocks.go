// Package service provides hand-written testify doubles for the domain
// service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"medvantage/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService implements service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) TokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockPaymentGateway implements service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func NewMockPaymentGateway(t *testing.T) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*service.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	intent, _ := args.Get(0).(*service.PaymentIntent)

	return intent, args.Error(1)
}
