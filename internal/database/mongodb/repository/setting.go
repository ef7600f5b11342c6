package repository

import (
	"context"

	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SettingRepository struct {
	store *store.Store[model.Setting]
}

func NewSettingRepository(database *mongo.Database) *SettingRepository {
	repository := &SettingRepository{
		store: store.New[model.Setting](database, "setting", core.MongoCollectionSettings),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.SettingIndexes)
	return repository
}

func (repository *SettingRepository) Store() *store.Store[model.Setting] {
	return repository.store
}

func (repository *SettingRepository) Create(ctx context.Context, setting *model.Setting) (*model.Setting, error) {
	return repository.store.Create(ctx, setting)
}

func (repository *SettingRepository) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	return repository.store.FindOne(ctx, bson.M{"key": key})
}

func (repository *SettingRepository) List(ctx context.Context) ([]model.Setting, error) {
	return repository.store.Find(ctx, bson.M{}, defaultListOptions())
}

func (repository *SettingRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Setting, error) {
	return repository.store.UpdateByID(ctx, id, set)
}

func (repository *SettingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.DeleteByID(ctx, id)
}
