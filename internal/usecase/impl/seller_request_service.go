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

// sellerRequestService implements the SellerRequestUsecase interface.
type sellerRequestService struct {
	txManager   repository.TransactionManager
	requestRepo repository.SellerRequestRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// SellerRequestServiceParams holds dependencies for sellerRequestService, injected by Fx.
type SellerRequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.SellerRequestRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewSellerRequestService is the constructor for sellerRequestService.
func NewSellerRequestService(params SellerRequestServiceParams) usecase.SellerRequestUsecase {
	return &sellerRequestService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *sellerRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit files a seller request. Only a plain user without a pending request
// may apply; the existence check happens before the insert, there is no
// storage-level constraint.
func (srv *sellerRequestService) Submit(ctx context.Context, email string, input *usecase.SubmitSellerRequestInput) (*entity.SellerRequest, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email")
		}

		return nil, errors.Wrap(err, "failed to load account for seller request")
	}

	if user.Role != entity.RoleUser {
		return nil, domainerrors.ErrConflict.WrapMessage("account already holds an elevated role")
	}

	if _, err := srv.requestRepo.FindPendingByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrSellerRequestPending.WrapMessage("pending request exists")
	} else if !errors.Is(err, repository.ErrSellerRequestNotFound) {
		return nil, errors.Wrap(err, "failed to check pending seller request")
	}

	request := &entity.SellerRequest{
		Email:       email,
		Name:        input.Name,
		Message:     input.Message,
		Status:      entity.RequestPending,
		RequestedAt: time.Now(),
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create seller request")
	}

	srv.log(ctx).Info("Seller request submitted", slog.String("email", email))

	return request, nil
}

func (srv *sellerRequestService) List(ctx context.Context) ([]*entity.SellerRequest, error) {
	requests, err := srv.requestRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller requests")
	}

	return requests, nil
}

// Decide approves or rejects a pending request. Approval promotes the owning
// account to seller; both writes share one transaction so an approved request
// can never exist without the matching promotion.
func (srv *sellerRequestService) Decide(ctx context.Context, id string, input *usecase.DecideSellerRequestInput) (*usecase.DecideSellerRequestOutput, error) {
	status := entity.RequestStatus(input.Status)
	if !status.IsValid() || status == entity.RequestPending {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be approved or rejected")
	}

	output := &usecase.DecideSellerRequestOutput{}

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		requestRepo := f.SellerRequestRepo()

		request, err := requestRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSellerRequestNotFound) {
				return domainerrors.ErrSellerRequestNotFound.WrapMessage("no request for id")
			}

			return errors.Wrap(err, "failed to load seller request")
		}

		if request.Status.IsTerminal() {
			return domainerrors.ErrSellerRequestProcessed.WrapMessage("request is " + string(request.Status))
		}

		now := time.Now()
		if err := requestRepo.UpdateStatus(ctx, id, status, now); err != nil {
			return errors.Wrap(err, "failed to update seller request status")
		}

		request.Status = status
		request.ProcessedAt = &now
		output.Request = request

		if status == entity.RequestApproved {
			if err := f.UserRepo().UpdateRoleByEmail(ctx, request.Email, entity.RoleSeller); err != nil {
				return errors.Wrap(err, "failed to promote account to seller")
			}
			output.RolePromoted = true
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Seller request decision failed",
			slog.String("id", id),
			slog.String("status", input.Status),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Seller request decided",
		slog.String("id", id),
		slog.String("status", input.Status),
		slog.Bool("promoted", output.RolePromoted),
	)

	return output, nil
}
