package tenant

import (
	"context"
	"fmt"

	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// provisionTenantDatabase 在租戶資料庫建立各 collection 的索引。
// CreateMany 具冪等性，重複佈建不會出錯。
func provisionTenantDatabase(ctx context.Context, database *mongo.Database) error {
	indexes := map[core.MongoCollection][]mongo.IndexModel{
		core.MongoCollectionProducts:  model.ProductIndexes,
		core.MongoCollectionOrders:    model.OrderIndexes,
		core.MongoCollectionCustomers: model.CustomerIndexes,
	}
	for collection, models := range indexes {
		if _, err := database.Collection(string(collection)).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
