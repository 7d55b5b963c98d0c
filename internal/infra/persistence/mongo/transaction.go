package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
)

// transactionManager implements repository.TransactionManager on mongo sessions.
// The cascading workflows (seller promotion, payment settlement) run their
// writes through it so both sides commit or abort together.
type transactionManager struct {
	db *mongo.Database
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside a session transaction. Repositories obtained from the
// factory passed to fn are bound to that session.
func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	session, err := m.db.Client().StartSession()
	if err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage("failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		factory := &sessionRepositoryFactory{db: m.db, sessCtx: sessCtx}

		return nil, fn(factory)
	})
	if err != nil {
		return errors.Wrap(err, "transaction aborted")
	}

	return nil
}

// sessionRepositoryFactory hands out repositories bound to one session.
type sessionRepositoryFactory struct {
	db      *mongo.Database
	sessCtx mongo.SessionContext
}

func (f *sessionRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{col: f.db.Collection(usersCollection), sessCtx: f.sessCtx}
}

func (f *sessionRepositoryFactory) SellerRequestRepo() repository.SellerRequestRepository {
	return &sellerRequestRepository{col: f.db.Collection(sellerRequestsCollection), sessCtx: f.sessCtx}
}

func (f *sessionRepositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{col: f.db.Collection(cartsCollection), sessCtx: f.sessCtx}
}

func (f *sessionRepositoryFactory) PaymentRepo() repository.PaymentRepository {
	return &paymentRepository{col: f.db.Collection(paymentsCollection), sessCtx: f.sessCtx}
}
