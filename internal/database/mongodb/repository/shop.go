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

// ShopRepository 租戶目錄：以 subdomain 為主要查詢鍵。
// FindBySubdomain 不過濾 isActive，啟用政策由呼叫端（tenant middleware）判斷，
// 才能區分 404（不存在）與 403（停用）。
type ShopRepository struct {
	store *store.Store[model.Shop]
}

func NewShopRepository(database *mongo.Database) *ShopRepository {
	repository := &ShopRepository{
		store: store.New[model.Shop](database, "shop", core.MongoCollectionShops),
	}
	_, _ = repository.store.Collection().Indexes().CreateMany(context.Background(), model.ShopIndexes)
	return repository
}

func (repository *ShopRepository) Store() *store.Store[model.Shop] {
	return repository.store
}

func (repository *ShopRepository) Create(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	return repository.store.Create(ctx, shop)
}

func (repository *ShopRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Shop, error) {
	return repository.store.FindByID(ctx, id)
}

func (repository *ShopRepository) FindBySubdomain(ctx context.Context, subdomain string) (*model.Shop, error) {
	return repository.store.FindOne(ctx, bson.M{"subdomain": subdomain})
}

func (repository *ShopRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Shop, error) {
	return repository.store.Find(ctx, bson.M{"ownerId": ownerID}, defaultListOptions())
}

func (repository *ShopRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*model.Shop, error) {
	return repository.store.UpdateByID(ctx, id, bson.M{"isActive": active})
}

// DeleteByID 僅供佈建補償使用；目錄紀錄在正常流程中不做硬刪除
func (repository *ShopRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return repository.store.DeleteByID(ctx, id)
}
