package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medvantage/internal/domain/entity"
	"medvantage/internal/domain/repository"
	"medvantage/internal/infra/persistence/model"
)

// cartRepository implements repository.CartRepository on a mongo collection.
type cartRepository struct {
	col     *mongo.Collection
	sessCtx mongo.SessionContext
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{col: db.Collection(cartsCollection)}
}

func (repo *cartRepository) context(ctx context.Context) context.Context {
	if repo.sessCtx != nil {
		return repo.sessCtx
	}

	return ctx
}

func (repo *cartRepository) FindByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	ctx = repo.context(ctx)

	cursor, err := repo.col.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}
	defer cursor.Close(ctx)

	var records []model.CartItemModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart items")
	}

	items := make([]*entity.CartItem, 0, len(records))
	for i := range records {
		items = append(items, toCartItemDomain(&records[i]))
	}

	return items, nil
}

func (repo *cartRepository) FindByID(ctx context.Context, id string) (*entity.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrCartItemNotFound
	}

	var record model.CartItemModel
	if err := repo.col.FindOne(repo.context(ctx), bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&record), nil
}

func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	record, err := fromCartItemDomain(item)
	if err != nil {
		return err
	}

	result, err := repo.col.InsertOne(repo.context(ctx), record)
	if err != nil {
		return errors.Wrap(err, "failed to insert cart item")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}

	return nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrCartItemNotFound
	}

	result, err := repo.col.UpdateByID(repo.context(ctx), oid, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrCartItemNotFound
	}

	result, err := repo.col.DeleteOne(repo.context(ctx), bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// Unknown ids cannot match any document; skip them.
			continue
		}
		oids = append(oids, oid)
	}

	if len(oids) == 0 {
		return 0, nil
	}

	result, err := repo.col.DeleteMany(repo.context(ctx), bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete cart items by ids")
	}

	return result.DeletedCount, nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userEmail string) (int64, error) {
	result, err := repo.col.DeleteMany(repo.context(ctx), bson.M{"userEmail": userEmail})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete cart items by user")
	}

	return result.DeletedCount, nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:           data.ID.Hex(),
		UserEmail:    data.UserEmail,
		MedicineID:   data.MedicineID.Hex(),
		MedicineName: data.MedicineName,
		Company:      data.Company,
		Price:        data.Price,
		Quantity:     data.Quantity,
		SellerEmail:  data.SellerEmail,
	}
}

func fromCartItemDomain(data *entity.CartItem) (*model.CartItemModel, error) {
	if data == nil {
		return nil, nil
	}

	medicineID, err := primitive.ObjectIDFromHex(data.MedicineID)
	if err != nil {
		return nil, repository.ErrMedicineNotFound
	}

	return &model.CartItemModel{
		UserEmail:    data.UserEmail,
		MedicineID:   medicineID,
		MedicineName: data.MedicineName,
		Company:      data.Company,
		Price:        data.Price,
		Quantity:     data.Quantity,
		SellerEmail:  data.SellerEmail,
	}, nil
}
