// Package mongo contains the concrete implementation of the persistence layer
// on the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"medvantage/config"
	"medvantage/internal/domain/lifecycle"
)

// Collection names within the service database.
const (
	usersCollection          = "users"
	sellerRequestsCollection = "sellerRequests"
	categoriesCollection     = "categories"
	medicinesCollection      = "medicines"
	cartsCollection          = "carts"
	paymentsCollection       = "payments"
	advertisementsCollection = "advertisements"
)

// Params defines the dependencies for the store connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the document store, pings the primary, and registers a
// disconnect hook on shutdown.
func New(ctx context.Context, params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	params.Logger.Info("Connected to document store",
		slog.String("database", cfg.Database),
	)

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(disconnectCtx), "failed to disconnect mongo")
		},
	})

	return client.Database(cfg.Database), nil
}
