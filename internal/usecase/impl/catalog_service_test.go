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

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		CategoryRepo: categoryRepo,
		MedicineRepo: medicineRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		medicineRepo: medicineRepo,
	}
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.On("FindBySlug", ctx, "nope").Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategory(ctx, "nope")

	require.Error(t, err)
	assert.Nil(t, category)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_CreateMedicine_StampsSeller(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.medicineRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.Medicine) bool {
		return m.SellerEmail == "seller@example.com" && !m.CreatedAt.IsZero()
	})).Return(nil)

	medicine, err := fx.service.CreateMedicine(ctx, "seller@example.com", &usecase.MedicineInput{
		Name:         "Ibuprofen",
		CategorySlug: "pain-relief",
		PricePerUnit: 5.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", medicine.SellerEmail)
}

func TestCatalogService_UpdateMedicine_NotOwner(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := "64f000000000000000000030"

	fx.medicineRepo.On("FindByID", ctx, id).
		Return(&entity.Medicine{ID: id, SellerEmail: "owner@example.com"}, nil)

	err := fx.service.UpdateMedicine(ctx, id, "someone-else@example.com", &usecase.MedicineInput{
		Name:         "Renamed",
		CategorySlug: "pain-relief",
		PricePerUnit: 9,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode())
	fx.medicineRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteMedicine_Owner(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := "64f000000000000000000031"

	fx.medicineRepo.On("FindByID", ctx, id).
		Return(&entity.Medicine{ID: id, SellerEmail: "owner@example.com"}, nil)
	fx.medicineRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteMedicine(ctx, id, "owner@example.com"))
}

func TestCatalogService_ListMedicines_FiltersBySlug(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := []*entity.Medicine{{Name: "Aspirin", CategorySlug: "pain-relief"}}

	fx.medicineRepo.On("Find", ctx, "pain-relief").Return(stored, nil)

	medicines, err := fx.service.ListMedicines(ctx, "pain-relief")

	require.NoError(t, err)
	assert.Equal(t, stored, medicines)
}
