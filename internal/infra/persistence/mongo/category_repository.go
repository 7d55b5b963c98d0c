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

// categoryRepository implements repository.CategoryRepository on a mongo collection.
type categoryRepository struct {
	col *mongo.Collection
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{col: db.Collection(categoriesCollection)}
}

func (repo *categoryRepository) Find(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}
	defer cursor.Close(ctx)

	var records []model.CategoryModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode categories")
	}

	categories := make([]*entity.Category, 0, len(records))
	for i := range records {
		categories = append(categories, toCategoryDomain(&records[i]))
	}

	return categories, nil
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var record model.CategoryModel
	if err := repo.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&record), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	record := fromCategoryDomain(category)

	result, err := repo.col.InsertOne(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to insert category")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid.Hex()
	}

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return repository.ErrCategoryNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"slug":        category.Slug,
		"imageUrl":    category.ImageURL,
		"description": category.Description,
	}}

	result, err := repo.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return errors.Wrap(err, "failed to update category")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrCategoryNotFound
	}

	result, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Slug:        data.Slug,
		ImageURL:    data.ImageURL,
		Description: data.Description,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		Name:        data.Name,
		Slug:        data.Slug,
		ImageURL:    data.ImageURL,
		Description: data.Description,
	}
}
