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

// advertisementRepository implements repository.AdvertisementRepository on a mongo collection.
type advertisementRepository struct {
	col *mongo.Collection
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *mongo.Database) repository.AdvertisementRepository {
	return &advertisementRepository{col: db.Collection(advertisementsCollection)}
}

func (repo *advertisementRepository) Find(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	return repo.find(ctx, filter)
}

func (repo *advertisementRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error) {
	return repo.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

func (repo *advertisementRepository) find(ctx context.Context, filter bson.M) ([]*entity.Advertisement, error) {
	cursor, err := repo.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find advertisements")
	}
	defer cursor.Close(ctx)

	var records []model.AdvertisementModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(records))
	for i := range records {
		ads = append(ads, toAdvertisementDomain(&records[i]))
	}

	return ads, nil
}

func (repo *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	record := fromAdvertisementDomain(ad)

	result, err := repo.col.InsertOne(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to insert advertisement")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid.Hex()
	}

	return nil
}

func (repo *advertisementRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAdvertisementNotFound
	}

	result, err := repo.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return errors.Wrap(err, "failed to toggle advertisement")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

func (repo *advertisementRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAdvertisementNotFound
	}

	result, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete advertisement")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAdvertisementDomain(data *model.AdvertisementModel) *entity.Advertisement {
	if data == nil {
		return nil
	}

	return &entity.Advertisement{
		ID:           data.ID.Hex(),
		SellerEmail:  data.SellerEmail,
		MedicineName: data.MedicineName,
		ImageURL:     data.ImageURL,
		Description:  data.Description,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAdvertisementDomain(data *entity.Advertisement) *model.AdvertisementModel {
	if data == nil {
		return nil
	}

	return &model.AdvertisementModel{
		SellerEmail:  data.SellerEmail,
		MedicineName: data.MedicineName,
		ImageURL:     data.ImageURL,
		Description:  data.Description,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
	}
}
