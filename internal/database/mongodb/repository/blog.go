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

type BlogRepository struct {
	store *store.Store[model.Blog]
}

func NewBlogRepository(database *mongo.Database) *BlogRepository {
	repository := &BlogRepository{
		store: store.New[model.Blog](database, "blog", core.MongoCollectionBlogs),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.BlogIndexes)
	return repository
}

func (repository *BlogRepository) Store() *store.Store[model.Blog] {
	return repository.store
}

func (repository *BlogRepository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	return repository.store.Create(ctx, blog)
}

func (repository *BlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	return repository.store.FindByID(ctx, id)
}

func (repository *BlogRepository) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	return repository.store.FindOne(ctx, bson.M{"slug": slug})
}

func (repository *BlogRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Blog, error) {
	return repository.store.UpdateByID(ctx, id, set)
}

func (repository *BlogRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.SoftDelete(ctx, id)
}
