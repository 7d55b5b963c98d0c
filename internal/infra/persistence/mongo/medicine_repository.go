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

// medicineRepository implements repository.MedicineRepository on a mongo collection.
type medicineRepository struct {
	col *mongo.Collection
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *mongo.Database) repository.MedicineRepository {
	return &medicineRepository{col: db.Collection(medicinesCollection)}
}

func (repo *medicineRepository) Find(ctx context.Context, categorySlug string) ([]*entity.Medicine, error) {
	filter := bson.M{}
	if categorySlug != "" {
		filter["categorySlug"] = categorySlug
	}

	return repo.find(ctx, filter)
}

func (repo *medicineRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error) {
	return repo.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

func (repo *medicineRepository) find(ctx context.Context, filter bson.M) ([]*entity.Medicine, error) {
	cursor, err := repo.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicines")
	}
	defer cursor.Close(ctx)

	var records []model.MedicineModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(records))
	for i := range records {
		medicines = append(medicines, toMedicineDomain(&records[i]))
	}

	return medicines, nil
}

func (repo *medicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrMedicineNotFound
	}

	var record model.MedicineModel
	if err := repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by id")
	}

	return toMedicineDomain(&record), nil
}

func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	record := fromMedicineDomain(medicine)

	result, err := repo.col.InsertOne(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to insert medicine")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		medicine.ID = oid.Hex()
	}

	return nil
}

func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	oid, err := primitive.ObjectIDFromHex(medicine.ID)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            medicine.Name,
		"genericName":     medicine.GenericName,
		"imageUrl":        medicine.ImageURL,
		"description":     medicine.Description,
		"categorySlug":    medicine.CategorySlug,
		"company":         medicine.Company,
		"massUnit":        medicine.MassUnit,
		"pricePerUnit":    medicine.PricePerUnit,
		"discountPercent": medicine.DiscountPercent,
	}}

	result, err := repo.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return errors.Wrap(err, "failed to update medicine")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

func (repo *medicineRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	result, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete medicine")
	}
	if result.DeletedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

func (repo *medicineRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := repo.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count medicines")
	}

	return count, nil
}

// --- Mapper Functions ---

func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:              data.ID.Hex(),
		Name:            data.Name,
		GenericName:     data.GenericName,
		ImageURL:        data.ImageURL,
		Description:     data.Description,
		CategorySlug:    data.CategorySlug,
		Company:         data.Company,
		MassUnit:        data.MassUnit,
		PricePerUnit:    data.PricePerUnit,
		DiscountPercent: data.DiscountPercent,
		SellerEmail:     data.SellerEmail,
		CreatedAt:       data.CreatedAt,
	}
}

func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	return &model.MedicineModel{
		Name:            data.Name,
		GenericName:     data.GenericName,
		ImageURL:        data.ImageURL,
		Description:     data.Description,
		CategorySlug:    data.CategorySlug,
		Company:         data.Company,
		MassUnit:        data.MassUnit,
		PricePerUnit:    data.PricePerUnit,
		DiscountPercent: data.DiscountPercent,
		SellerEmail:     data.SellerEmail,
		CreatedAt:       data.CreatedAt,
	}
}
