package impl

import (
	"context"
	"testing"

	mockRepo "medvantage/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_AdminStats(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	requestRepo := mockRepo.NewMockSellerRequestRepository(t)

	service := NewStatsService(StatsServiceParams{
		UserRepo:          userRepo,
		MedicineRepo:      medicineRepo,
		PaymentRepo:       paymentRepo,
		SellerRequestRepo: requestRepo,
		Logger:            newDiscardLogger(),
	})

	ctx := context.Background()
	userRepo.On("EstimatedCount", ctx).Return(int64(120), nil)
	medicineRepo.On("EstimatedCount", ctx).Return(int64(45), nil)
	paymentRepo.On("EstimatedCount", ctx).Return(int64(300), nil)
	requestRepo.On("EstimatedCount", ctx).Return(int64(7), nil)
	paymentRepo.On("TotalRevenue", ctx).Return(10234.55, nil)

	stats, err := service.AdminStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.Users)
	assert.Equal(t, int64(45), stats.Medicines)
	assert.Equal(t, int64(300), stats.Payments)
	assert.Equal(t, int64(7), stats.SellerRequests)
	assert.InDelta(t, 10234.55, stats.TotalRevenue, 0.001)
}

func TestStatsService_AdminStats_CountFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	requestRepo := mockRepo.NewMockSellerRequestRepository(t)

	service := NewStatsService(StatsServiceParams{
		UserRepo:          userRepo,
		MedicineRepo:      medicineRepo,
		PaymentRepo:       paymentRepo,
		SellerRequestRepo: requestRepo,
		Logger:            newDiscardLogger(),
	})

	ctx := context.Background()
	userRepo.On("EstimatedCount", ctx).Return(int64(0), errors.New("store down"))

	stats, err := service.AdminStats(ctx)

	require.Error(t, err)
	assert.Nil(t, stats)
}
