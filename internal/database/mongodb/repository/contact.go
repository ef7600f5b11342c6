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

type ContactRepository struct {
	store *store.Store[model.Contact]
}

func NewContactRepository(database *mongo.Database) *ContactRepository {
	repository := &ContactRepository{
		store: store.New[model.Contact](database, "contact", core.MongoCollectionContacts),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.ContactIndexes)
	return repository
}

func (repository *ContactRepository) Store() *store.Store[model.Contact] {
	return repository.store
}

func (repository *ContactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	return repository.store.Create(ctx, contact)
}

func (repository *ContactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	return repository.store.FindByID(ctx, id)
}

func (repository *ContactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ContactStatus) (*model.Contact, error) {
	return repository.store.UpdateByID(ctx, id, bson.M{"status": status})
}

func (repository *ContactRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.SoftDelete(ctx, id)
}
