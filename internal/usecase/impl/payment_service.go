package impl

import (
	"context"
	"log/slog"
	"time"

	"medvantage/config"
	deliverycontext "medvantage/internal/delivery/context"
	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/domain/service"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	currency    string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		currency:    params.Config.Stripe.Currency,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIntent registers a payment intent with the processor and returns the
// client secret the frontend confirms with.
func (srv *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount.WrapMessage("non-positive amount")
	}

	intent, err := srv.gateway.CreateIntent(ctx, input.Amount, srv.currency)
	if err != nil {
		srv.log(ctx).Error("Payment intent creation failed", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentIntentFailed.WrapMessage(err.Error())
	}

	return &usecase.CreateIntentOutput{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Settle records the confirmed payment and removes the purchased cart entries.
// Both writes share one transaction so a recorded payment always clears its
// carts and vice versa.
func (srv *paymentService) Settle(ctx context.Context, userEmail string, input *usecase.SettlePaymentInput) (*usecase.SettlePaymentOutput, error) {
	payment := &entity.Payment{
		UserEmail:     userEmail,
		Amount:        input.Amount,
		Currency:      srv.currency,
		TransactionID: input.TransactionID,
		CartIDs:       input.CartIDs,
		MedicineNames: input.MedicineNames,
		Status:        "paid",
		PaidAt:        time.Now(),
	}

	output := &usecase.SettlePaymentOutput{}

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		deleted, err := f.CartRepo().DeleteByIDs(ctx, input.CartIDs)
		if err != nil {
			return errors.Wrap(err, "failed to clear paid cart items")
		}
		output.CartsCleared = deleted

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Payment settlement failed",
			slog.String("user", userEmail),
			slog.String("transaction", input.TransactionID),
			slog.Any("error", err),
		)

		return nil, err
	}

	output.Payment = payment

	srv.log(ctx).Info("Payment settled",
		slog.String("user", userEmail),
		slog.String("transaction", input.TransactionID),
		slog.Int64("cartsCleared", output.CartsCleared),
	)

	return output, nil
}

func (srv *paymentService) ListByUser(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByUser(ctx, userEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user payments")
	}

	return payments, nil
}

func (srv *paymentService) List(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
