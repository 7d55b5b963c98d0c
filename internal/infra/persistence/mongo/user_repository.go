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

// userRepository implements repository.UserRepository on a mongo collection.
type userRepository struct {
	col     *mongo.Collection
	sessCtx mongo.SessionContext
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{col: db.Collection(usersCollection)}
}

// context returns the session-bound context when the repository was obtained
// from a transaction factory, otherwise the caller's context.
func (repo *userRepository) context(ctx context.Context) context.Context {
	if repo.sessCtx != nil {
		return repo.sessCtx
	}

	return ctx
}

func (repo *userRepository) Find(ctx context.Context) ([]*entity.User, error) {
	ctx = repo.context(ctx)

	cursor, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	defer cursor.Close(ctx)

	var records []model.UserModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(records))
	for i := range records {
		users = append(users, toUserDomain(&records[i]))
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var record model.UserModel
	if err := repo.col.FindOne(repo.context(ctx), bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&record), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record model.UserModel
	if err := repo.col.FindOne(repo.context(ctx), bson.M{"email": email}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&record), nil
}

// Upsert inserts the user keyed by email. The role and creation timestamp are
// only written on insert so re-registration never clobbers a promoted role.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set": bson.M{
			"name":     user.Name,
			"photoUrl": user.PhotoURL,
		},
		"$setOnInsert": bson.M{
			"email":     user.Email,
			"role":      user.Role.String(),
			"createdAt": time.Now(),
		},
	}

	result, err := repo.col.UpdateOne(repo.context(ctx), filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

func (repo *userRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result, err := repo.col.UpdateByID(repo.context(ctx), oid, bson.M{"$set": bson.M{"role": role.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to update user role")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) error {
	result, err := repo.col.UpdateOne(
		repo.context(ctx),
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role.String()}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update user role by email")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result, err := repo.col.DeleteOne(repo.context(ctx), bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := repo.col.EstimatedDocumentCount(repo.context(ctx))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a stored user document to a domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID.Hex(),
		Email:     data.Email,
		Name:      data.Name,
		PhotoURL:  data.PhotoURL,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
	}
}
