package main

import (
	"context"
	"log/slog"
	"os"

	"medvantage/config"
	"medvantage/internal/delivery"
	"medvantage/internal/delivery/http"
	"medvantage/internal/delivery/http/middleware"
	"medvantage/internal/delivery/http/router/handler"
	"medvantage/internal/infra/auth"
	logs "medvantage/internal/infra/log"
	"medvantage/internal/infra/payment"
	persistence "medvantage/internal/infra/persistence/mongo"
	"medvantage/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewUserRepository,
			persistence.NewSellerRequestRepository,
			persistence.NewCategoryRepository,
			persistence.NewMedicineRepository,
			persistence.NewCartRepository,
			persistence.NewPaymentRepository,
			persistence.NewAdvertisementRepository,
			persistence.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewStripeGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSellerRequestService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewPaymentService,
			impl.NewAdvertisementService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewPaymentHandler,
			handler.NewSellerRequestHandler,
			handler.NewAdvertisementHandler,
			handler.NewStatsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
