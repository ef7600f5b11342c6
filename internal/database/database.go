package database

import (
	client "storefront/internal/database/client"
	fluentdRepo "storefront/internal/database/fluentd/repository"
	mongoRepo "storefront/internal/database/mongodb/repository"
	redisRepo "storefront/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
