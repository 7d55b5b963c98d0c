package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medvantage/internal/domain/entity"
	"medvantage/internal/domain/repository"
	"medvantage/internal/infra/persistence/model"
)

// sellerRequestRepository implements repository.SellerRequestRepository on a mongo collection.
type sellerRequestRepository struct {
	col     *mongo.Collection
	sessCtx mongo.SessionContext
}

// NewSellerRequestRepository is the constructor for sellerRequestRepository.
func NewSellerRequestRepository(db *mongo.Database) repository.SellerRequestRepository {
	return &sellerRequestRepository{col: db.Collection(sellerRequestsCollection)}
}

func (repo *sellerRequestRepository) context(ctx context.Context) context.Context {
	if repo.sessCtx != nil {
		return repo.sessCtx
	}

	return ctx
}

func (repo *sellerRequestRepository) Find(ctx context.Context) ([]*entity.SellerRequest, error) {
	ctx = repo.context(ctx)

	cursor, err := repo.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller requests")
	}
	defer cursor.Close(ctx)

	var records []model.SellerRequestModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode seller requests")
	}

	requests := make([]*entity.SellerRequest, 0, len(records))
	for i := range records {
		requests = append(requests, toSellerRequestDomain(&records[i]))
	}

	return requests, nil
}

func (repo *sellerRequestRepository) FindByID(ctx context.Context, id string) (*entity.SellerRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrSellerRequestNotFound
	}

	var record model.SellerRequestModel
	if err := repo.col.FindOne(repo.context(ctx), bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSellerRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller request by id")
	}

	return toSellerRequestDomain(&record), nil
}

func (repo *sellerRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.SellerRequest, error) {
	filter := bson.M{
		"email":  email,
		"status": entity.RequestPending,
	}

	var record model.SellerRequestModel
	if err := repo.col.FindOne(repo.context(ctx), filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSellerRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending seller request")
	}

	return toSellerRequestDomain(&record), nil
}

func (repo *sellerRequestRepository) Create(ctx context.Context, request *entity.SellerRequest) error {
	record := fromSellerRequestDomain(request)

	result, err := repo.col.InsertOne(repo.context(ctx), record)
	if err != nil {
		return errors.Wrap(err, "failed to insert seller request")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid.Hex()
	}

	return nil
}

func (repo *sellerRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, processedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrSellerRequestNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(status),
		"processedAt": processedAt,
	}}

	result, err := repo.col.UpdateByID(repo.context(ctx), oid, update)
	if err != nil {
		return errors.Wrap(err, "failed to update seller request status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrSellerRequestNotFound
	}

	return nil
}

func (repo *sellerRequestRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := repo.col.DeleteMany(repo.context(ctx), bson.M{"email": email})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete seller requests by email")
	}

	return result.DeletedCount, nil
}

func (repo *sellerRequestRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := repo.col.EstimatedDocumentCount(repo.context(ctx))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count seller requests")
	}

	return count, nil
}

// --- Mapper Functions ---

func toSellerRequestDomain(data *model.SellerRequestModel) *entity.SellerRequest {
	if data == nil {
		return nil
	}

	return &entity.SellerRequest{
		ID:          data.ID.Hex(),
		Email:       data.Email,
		Name:        data.Name,
		Message:     data.Message,
		Status:      entity.RequestStatus(data.Status),
		RequestedAt: data.RequestedAt,
		ProcessedAt: data.ProcessedAt,
	}
}

func fromSellerRequestDomain(data *entity.SellerRequest) *model.SellerRequestModel {
	if data == nil {
		return nil
	}

	return &model.SellerRequestModel{
		Email:       data.Email,
		Name:        data.Name,
		Message:     data.Message,
		Status:      string(data.Status),
		RequestedAt: data.RequestedAt,
		ProcessedAt: data.ProcessedAt,
	}
}
