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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:    "buyer@example.com",
		Name:     "Buyer",
		PhotoURL: "https://example.com/p.png",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.AlreadyExists)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.False(t, output.User.CreatedAt.IsZero())
}

func TestUserService_RegisterUser_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{Email: "buyer@example.com", Name: "Buyer", Role: entity.RoleSeller}

	fx.userRepo.On("FindByEmail", ctx, existing.Email).
		Return(existing, nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email: existing.Email,
		Name:  "Different Name",
	})

	require.NoError(t, err)
	assert.True(t, output.AlreadyExists)
	assert.Same(t, existing, output.User)
	// No write happened: the repo double would fail the test on an
	// unexpected Upsert call.
	fx.userRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUserByEmail(ctx, "ghost@example.com")

	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_UpdateRoleByEmail_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.UpdateRoleByEmail(context.Background(), "buyer@example.com", &usecase.UpdateRoleInput{Role: "superuser"})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ROLE", appErr.ErrorCode())
}

func TestUserService_UpdateRoleByEmail_Promote(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "seller@example.com"

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(txUserRepo)
			txUserRepo.On("UpdateRoleByEmail", ctx, email, entity.RoleSeller).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.UpdateRoleByEmail(ctx, email, &usecase.UpdateRoleInput{Role: "seller"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, output.Role)
	assert.Zero(t, output.RequestsDeleted)
}

func TestUserService_UpdateRoleByEmail_DemotionErasesRequests(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ex-seller@example.com"

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txRequestRepo := mockRepo.NewMockSellerRequestRepository(t)

			factory.On("UserRepo").Return(txUserRepo)
			factory.On("SellerRequestRepo").Return(txRequestRepo)

			txUserRepo.On("UpdateRoleByEmail", ctx, email, entity.RoleUser).Return(nil)
			txRequestRepo.On("DeleteByEmail", ctx, email).Return(int64(3), nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.UpdateRoleByEmail(ctx, email, &usecase.UpdateRoleInput{Role: "user"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.Role)
	assert.Equal(t, int64(3), output.RequestsDeleted)
}

func TestUserService_UpdateRoleByID_ResolvesEmailFirst(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: "64f000000000000000000001", Email: "byid@example.com", Role: entity.RoleUser}

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(txUserRepo)
			txUserRepo.On("UpdateRoleByEmail", ctx, user.Email, entity.RoleAdmin).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.UpdateRoleByID(ctx, user.ID, &usecase.UpdateRoleInput{Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, user.Email, output.Email)
	assert.Equal(t, entity.RoleAdmin, output.Role)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("Delete", ctx, "missing").Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, "missing")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}
