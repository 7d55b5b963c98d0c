package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medvantage/internal/domain/entity"
	"medvantage/internal/domain/repository"
	"medvantage/internal/infra/persistence/model"
)

// paymentRepository implements repository.PaymentRepository on a mongo collection.
type paymentRepository struct {
	col     *mongo.Collection
	sessCtx mongo.SessionContext
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{col: db.Collection(paymentsCollection)}
}

func (repo *paymentRepository) context(ctx context.Context) context.Context {
	if repo.sessCtx != nil {
		return repo.sessCtx
	}

	return ctx
}

func (repo *paymentRepository) Find(ctx context.Context) ([]*entity.Payment, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *paymentRepository) FindByUser(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	return repo.find(ctx, bson.M{"userEmail": userEmail})
}

func (repo *paymentRepository) find(ctx context.Context, filter bson.M) ([]*entity.Payment, error) {
	ctx = repo.context(ctx)

	cursor, err := repo.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments")
	}
	defer cursor.Close(ctx)

	var records []model.PaymentModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode payments")
	}

	payments := make([]*entity.Payment, 0, len(records))
	for i := range records {
		payments = append(payments, toPaymentDomain(&records[i]))
	}

	return payments, nil
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	record := fromPaymentDomain(payment)

	result, err := repo.col.InsertOne(repo.context(ctx), record)
	if err != nil {
		return errors.Wrap(err, "failed to insert payment")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid.Hex()
	}

	return nil
}

func (repo *paymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := repo.col.EstimatedDocumentCount(repo.context(ctx))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count payments")
	}

	return count, nil
}

func (repo *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx = repo.context(ctx)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := repo.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrap(err, "failed to aggregate payment revenue")
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, errors.Wrap(err, "failed to decode payment revenue")
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	cartIDs := make([]string, 0, len(data.CartIDs))
	for _, oid := range data.CartIDs {
		cartIDs = append(cartIDs, oid.Hex())
	}

	return &entity.Payment{
		ID:            data.ID.Hex(),
		UserEmail:     data.UserEmail,
		Amount:        data.Amount,
		Currency:      data.Currency,
		TransactionID: data.TransactionID,
		CartIDs:       cartIDs,
		MedicineNames: data.MedicineNames,
		Status:        data.Status,
		PaidAt:        data.PaidAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	cartIDs := make([]primitive.ObjectID, 0, len(data.CartIDs))
	for _, id := range data.CartIDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			cartIDs = append(cartIDs, oid)
		}
	}

	return &model.PaymentModel{
		UserEmail:     data.UserEmail,
		Amount:        data.Amount,
		Currency:      data.Currency,
		TransactionID: data.TransactionID,
		CartIDs:       cartIDs,
		MedicineNames: data.MedicineNames,
		Status:        data.Status,
		PaidAt:        data.PaidAt,
	}
}
