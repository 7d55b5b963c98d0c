package impl

import (
	"context"
	"log/slog"

	deliverycontext "medvantage/internal/delivery/context"
	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) ListByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return items, nil
}

// Add snapshots the medicine's current discounted price into the cart entry.
func (srv *cartService) Add(ctx context.Context, userEmail string, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, input.MedicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound.WrapMessage("no medicine for id")
		}

		return nil, errors.Wrap(err, "failed to load medicine for cart")
	}

	item := &entity.CartItem{
		UserEmail:    userEmail,
		MedicineID:   medicine.ID,
		MedicineName: medicine.Name,
		Company:      medicine.Company,
		Price:        medicine.DiscountedPrice(),
		Quantity:     input.Quantity,
		SellerEmail:  medicine.SellerEmail,
	}

	if err := srv.cartRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("user", userEmail),
		slog.String("medicine", medicine.Name),
	)

	return item, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, id, userEmail string, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	if err := srv.checkOwnership(ctx, id, userEmail); err != nil {
		return err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no cart item for id")
		}

		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

func (srv *cartService) Remove(ctx context.Context, id, userEmail string) error {
	if err := srv.checkOwnership(ctx, id, userEmail); err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no cart item for id")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) Clear(ctx context.Context, userEmail string) (int64, error) {
	deleted, err := srv.cartRepo.DeleteByUser(ctx, userEmail)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cart cleared",
		slog.String("user", userEmail),
		slog.Int64("deleted", deleted),
	)

	return deleted, nil
}

func (srv *cartService) checkOwnership(ctx context.Context, id, userEmail string) error {
	item, err := srv.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no cart item for id")
		}

		return errors.Wrap(err, "failed to load cart item for ownership check")
	}

	if item.UserEmail != userEmail {
		return domainerrors.ErrForbidden.WrapMessage("cart item belongs to another user")
	}

	return nil
}
