package repository

import (
	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// TenantSet 綁定單一租戶資料庫的 stores。索引已在租戶佈建時建立，
// 這裡不再重複 ensureIndexes。
type TenantSet struct {
	Products  *store.Store[model.Product]
	Orders    *store.Store[model.Order]
	Customers *store.Store[model.Customer]
}

func NewTenantSet(database *mongo.Database) *TenantSet {
	return &TenantSet{
		Products:  store.New[model.Product](database, "product", core.MongoCollectionProducts),
		Orders:    store.New[model.Order](database, "order", core.MongoCollectionOrders),
		Customers: store.New[model.Customer](database, "customer", core.MongoCollectionCustomers),
	}
}
