// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medvantage/internal/delivery/context"
	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser upserts an account keyed by email. A second registration for
// the same email performs no write and reports AlreadyExists, so the route
// stays idempotent.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Debug("Registration skipped, account exists", slog.String("email", input.Email))

		return &usecase.RegisterOutput{User: existing, AlreadyExists: true}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	newUser := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      entity.RoleUser,
		CreatedAt: time.Now(),
	}

	if err := srv.userRepo.Upsert(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Info("Account registered", slog.String("email", input.Email))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return users, nil
}

func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdateRoleByID changes the stored role. The email behind the id is resolved
// first so a demotion can erase the account's seller requests in the same
// transaction.
func (srv *userService) UpdateRoleByID(ctx context.Context, id string, input *usecase.UpdateRoleInput) (*usecase.RoleChangeOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role " + input.Role)
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for id")
		}

		return nil, errors.Wrap(err, "failed to load account for role change")
	}

	return srv.changeRole(ctx, user.Email, role)
}

func (srv *userService) UpdateRoleByEmail(ctx context.Context, email string, input *usecase.UpdateRoleInput) (*usecase.RoleChangeOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role " + input.Role)
	}

	return srv.changeRole(ctx, email, role)
}

// changeRole writes the new role and, when demoting to plain user, erases
// the account's seller request history. Both writes share one transaction.
func (srv *userService) changeRole(ctx context.Context, email string, role entity.Role) (*usecase.RoleChangeOutput, error) {
	output := &usecase.RoleChangeOutput{Email: email, Role: role}

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().UpdateRoleByEmail(ctx, email, role); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no account for email")
			}

			return errors.Wrap(err, "failed to update role")
		}

		// Demotion erases the request history rather than transitioning it.
		if role == entity.RoleUser {
			deleted, err := f.SellerRequestRepo().DeleteByEmail(ctx, email)
			if err != nil {
				return errors.Wrap(err, "failed to erase seller requests on demotion")
			}
			output.RequestsDeleted = deleted
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Role change failed",
			slog.String("email", email),
			slog.String("role", role.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Role changed",
		slog.String("email", email),
		slog.String("role", role.String()),
		slog.Int64("requestsDeleted", output.RequestsDeleted),
	)

	return output, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no account for id")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.String("id", id))

	return nil
}
