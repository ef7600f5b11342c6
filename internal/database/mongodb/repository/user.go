package repository

import (
	"context"
	"time"

	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	store *store.Store[model.User]
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	repository := &UserRepository{
		store: store.New[model.User](database, "user", core.MongoCollectionUsers),
	}
	// 啟動時建立常用索引（冪等、存在即跳過）
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.UserIndexes)
	return repository
}

func (repository *UserRepository) Store() *store.Store[model.User] {
	return repository.store
}

func (repository *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return repository.store.Create(ctx, user)
}

func (repository *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return repository.store.FindByID(ctx, id)
}

// FindByEmail 包含軟刪除者在內的精確比對（登入時需要分辨「已刪除」與「不存在」）
func (repository *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return repository.store.FindOne(ctx, bson.M{"email": email})
}

func (repository *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.User, error) {
	return repository.store.UpdateByID(ctx, id, set)
}

func (repository *UserRepository) UpdateLastSeen(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := repository.store.UpdateByID(ctx, id, bson.M{"lastSeen": at.UTC()})
	return err
}

func (repository *UserRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.SoftDelete(ctx, id)
}
