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

type TagRepository struct {
	store *store.Store[model.Tag]
}

func NewTagRepository(database *mongo.Database) *TagRepository {
	repository := &TagRepository{
		store: store.New[model.Tag](database, "tag", core.MongoCollectionTags),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.TagIndexes)
	return repository
}

func (repository *TagRepository) Store() *store.Store[model.Tag] {
	return repository.store
}

func (repository *TagRepository) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	return repository.store.Create(ctx, tag)
}

func (repository *TagRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	return repository.store.FindByID(ctx, id)
}

func (repository *TagRepository) FindBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	return repository.store.FindOne(ctx, bson.M{"slug": slug})
}

func (repository *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	return repository.store.Find(ctx, bson.M{}, defaultListOptions())
}

func (repository *TagRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Tag, error) {
	return repository.store.UpdateByID(ctx, id, set)
}

func (repository *TagRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.SoftDelete(ctx, id)
}

type CategoryRepository struct {
	store *store.Store[model.Category]
}

func NewCategoryRepository(database *mongo.Database) *CategoryRepository {
	repository := &CategoryRepository{
		store: store.New[model.Category](database, "category", core.MongoCollectionCategories),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.CategoryIndexes)
	return repository
}

func (repository *CategoryRepository) Store() *store.Store[model.Category] {
	return repository.store
}

func (repository *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	return repository.store.Create(ctx, category)
}

func (repository *CategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	return repository.store.FindByID(ctx, id)
}

func (repository *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return repository.store.FindOne(ctx, bson.M{"slug": slug})
}

func (repository *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	return repository.store.Find(ctx, bson.M{}, defaultListOptions())
}

func (repository *CategoryRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Category, error) {
	return repository.store.UpdateByID(ctx, id, set)
}

func (repository *CategoryRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.SoftDelete(ctx, id)
}
