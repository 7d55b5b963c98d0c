package impl

import (
	"context"
	"log/slog"

	deliverycontext "medvantage/internal/delivery/context"
	"medvantage/internal/domain/repository"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo          repository.UserRepository
	medicineRepo      repository.MedicineRepository
	paymentRepo       repository.PaymentRepository
	sellerRequestRepo repository.SellerRequestRepository
	logger            *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	MedicineRepo      repository.MedicineRepository
	PaymentRepo       repository.PaymentRepository
	SellerRequestRepo repository.SellerRequestRepository
	Logger            *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:          params.UserRepo,
		medicineRepo:      params.MedicineRepo,
		paymentRepo:       params.PaymentRepo,
		sellerRequestRepo: params.SellerRequestRepo,
		logger:            params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdminStats gathers the dashboard snapshot. Counts are estimates and revenue
// is summed with an aggregation pipeline, so the numbers may lag writes by a
// moment.
func (srv *statsService) AdminStats(ctx context.Context) (*usecase.AdminStats, error) {
	stats := &usecase.AdminStats{}

	var err error
	if stats.Users, err = srv.userRepo.EstimatedCount(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.Medicines, err = srv.medicineRepo.EstimatedCount(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count medicines")
	}
	if stats.Payments, err = srv.paymentRepo.EstimatedCount(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count payments")
	}
	if stats.SellerRequests, err = srv.sellerRequestRepo.EstimatedCount(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count seller requests")
	}
	if stats.TotalRevenue, err = srv.paymentRepo.TotalRevenue(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	srv.log(ctx).Debug("Admin stats gathered",
		slog.Int64("users", stats.Users),
		slog.Int64("payments", stats.Payments),
	)

	return stats, nil
}
