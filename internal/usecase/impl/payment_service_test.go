package impl

import (
	"context"
	"testing"
	"time"

	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/domain/service"
	mockRepo "medvantage/internal/mocks/repository"
	mockSvc "medvantage/internal/mocks/service"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Gateway:     gateway,
		Config:      newTestConfig("usd"),
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		txManager:   txManager,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

func TestPaymentService_CreateIntent_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.gateway.On("CreateIntent", ctx, int64(2599), "usd").
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{Amount: 2599})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", output.IntentID)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
}

func TestPaymentService_CreateIntent_NonPositiveAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	output, err := fx.service.CreateIntent(context.Background(), &usecase.CreateIntentInput{Amount: 0})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_AMOUNT", appErr.ErrorCode())
	fx.gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_CreateIntent_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.gateway.On("CreateIntent", ctx, int64(100), "usd").
		Return(nil, errors.New("stripe: api down"))

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{Amount: 100})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.Equal(t, "PAYMENT_INTENT_FAILED", appErr.ErrorCode())
}

func TestPaymentService_Settle_InsertsPaymentAndClearsCarts(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	email := "buyer@example.com"
	cartIDs := []string{"64f000000000000000000010", "64f000000000000000000011"}

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)

			factory.On("PaymentRepo").Return(txPaymentRepo)
			factory.On("CartRepo").Return(txCartRepo)

			txPaymentRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Payment) bool {
				return p.UserEmail == email &&
					p.TransactionID == "txn_789" &&
					p.Status == "paid" &&
					p.Currency == "usd" &&
					len(p.CartIDs) == 2
			})).Return(nil)

			// Only the listed carts are removed.
			txCartRepo.On("DeleteByIDs", ctx, cartIDs).Return(int64(2), nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.Settle(ctx, email, &usecase.SettlePaymentInput{
		Amount:        25.99,
		TransactionID: "txn_789",
		CartIDs:       cartIDs,
		MedicineNames: []string{"Paracetamol", "Ibuprofen"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), output.CartsCleared)
	assert.Equal(t, email, output.Payment.UserEmail)
	assert.WithinDuration(t, time.Now(), output.Payment.PaidAt, time.Minute)
}

func TestPaymentService_Settle_TransactionFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("write conflict"), "payments insert")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(storeErr)

	output, err := fx.service.Settle(ctx, "buyer@example.com", &usecase.SettlePaymentInput{
		Amount:        10,
		TransactionID: "txn_000",
		CartIDs:       []string{"64f000000000000000000012"},
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestPaymentService_ListByUser(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	stored := []*entity.Payment{{UserEmail: "buyer@example.com", Amount: 12.5}}

	fx.paymentRepo.On("FindByUser", ctx, "buyer@example.com").Return(stored, nil)

	payments, err := fx.service.ListByUser(ctx, "buyer@example.com")

	require.NoError(t, err)
	assert.Equal(t, stored, payments)
}
