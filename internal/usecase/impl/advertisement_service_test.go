package impl

import (
	"context"
	"testing"

	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	mockRepo "medvantage/internal/mocks/repository"
	"medvantage/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdvertisementService(t *testing.T) (usecase.AdvertisementUsecase, *mockRepo.MockAdvertisementRepository) {
	adRepo := mockRepo.NewMockAdvertisementRepository(t)

	service := NewAdvertisementService(AdvertisementServiceParams{
		AdRepo: adRepo,
		Logger: newDiscardLogger(),
	})

	return service, adRepo
}

func TestAdvertisementService_Submit_StartsInactive(t *testing.T) {
	service, adRepo := createTestAdvertisementService(t)

	ctx := context.Background()
	adRepo.On("Create", ctx, mock.MatchedBy(func(ad *entity.Advertisement) bool {
		return ad.SellerEmail == "seller@example.com" && !ad.Active
	})).Return(nil)

	ad, err := service.Submit(ctx, "seller@example.com", &usecase.AdvertisementInput{
		MedicineName: "Paracetamol",
		ImageURL:     "https://example.com/banner.png",
	})

	require.NoError(t, err)
	assert.False(t, ad.Active)
	assert.False(t, ad.CreatedAt.IsZero())
}

func TestAdvertisementService_SetActive_NotFound(t *testing.T) {
	service, adRepo := createTestAdvertisementService(t)

	ctx := context.Background()
	adRepo.On("SetActive", ctx, "missing", true).Return(repository.ErrAdvertisementNotFound)

	err := service.SetActive(ctx, "missing", true)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ADVERTISEMENT_NOT_FOUND", appErr.ErrorCode())
}

func TestAdvertisementService_List_ActiveOnly(t *testing.T) {
	service, adRepo := createTestAdvertisementService(t)

	ctx := context.Background()
	stored := []*entity.Advertisement{{MedicineName: "Paracetamol", Active: true}}

	adRepo.On("Find", ctx, true).Return(stored, nil)

	ads, err := service.List(ctx, true)

	require.NoError(t, err)
	assert.Equal(t, stored, ads)
}
