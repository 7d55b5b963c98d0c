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

// advertisementService implements the AdvertisementUsecase interface.
type advertisementService struct {
	adRepo repository.AdvertisementRepository
	logger *slog.Logger
}

// AdvertisementServiceParams holds dependencies for advertisementService, injected by Fx.
type AdvertisementServiceParams struct {
	fx.In

	AdRepo repository.AdvertisementRepository
	Logger *slog.Logger
}

// NewAdvertisementService is the constructor for advertisementService.
func NewAdvertisementService(params AdvertisementServiceParams) usecase.AdvertisementUsecase {
	return &advertisementService{
		adRepo: params.AdRepo,
		logger: params.Logger,
	}
}

func (srv *advertisementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *advertisementService) List(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	ads, err := srv.adRepo.Find(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	return ads, nil
}

func (srv *advertisementService) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error) {
	ads, err := srv.adRepo.FindBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller advertisements")
	}

	return ads, nil
}

// Submit files a banner for the seller. It always starts inactive so an admin
// decides what reaches the storefront slider.
func (srv *advertisementService) Submit(ctx context.Context, sellerEmail string, input *usecase.AdvertisementInput) (*entity.Advertisement, error) {
	ad := &entity.Advertisement{
		SellerEmail:  sellerEmail,
		MedicineName: input.MedicineName,
		ImageURL:     input.ImageURL,
		Description:  input.Description,
		Active:       false,
		CreatedAt:    time.Now(),
	}

	if err := srv.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create advertisement")
	}

	srv.log(ctx).Info("Advertisement submitted",
		slog.String("seller", sellerEmail),
		slog.String("medicine", input.MedicineName),
	)

	return ad, nil
}

func (srv *advertisementService) SetActive(ctx context.Context, id string, active bool) error {
	if err := srv.adRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return domainerrors.ErrAdvertisementNotFound
		}

		return errors.Wrap(err, "failed to toggle advertisement")
	}

	srv.log(ctx).Info("Advertisement toggled",
		slog.String("id", id),
		slog.Bool("active", active),
	)

	return nil
}
