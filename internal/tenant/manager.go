package tenant

import (
	"context"
	"sync"

	"storefront/config"
	"storefront/internal/core"
	"storefront/internal/database/client"
	"storefront/internal/telemetry"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Manager 管理租戶資料庫 handle 的快取。
// 同一個資料庫名稱只佈建一次（singleflight 合併併發請求），
// 之後命中快取直接回傳。
type Manager struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	config      *config.Configuration
	mongoClient *client.MongoClient

	mu        sync.RWMutex
	databases map[string]*mongo.Database
	group     singleflight.Group

	// 首次取得 handle 時執行（建索引等）。測試可替換。
	provision func(ctx context.Context, database *mongo.Database) error
}

func NewManager(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	mongoClient *client.MongoClient,
) *Manager {
	return &Manager{
		logger:      logger,
		trace:       trace,
		metric:      metric,
		config:      config,
		mongoClient: mongoClient,
		databases:   make(map[string]*mongo.Database),
		provision:   provisionTenantDatabase,
	}
}

// DatabaseName 由 subdomain 組出租戶資料庫名稱（<prefix><subdomain>）。
func (manager *Manager) DatabaseName(subdomain string) string {
	prefix := manager.config.Tenant.DatabasePrefix
	if prefix == "" {
		prefix = core.TenantDatabasePrefix
	}
	return prefix + subdomain
}

// GetOrCreate 回傳租戶資料庫 handle；未見過的名稱會先佈建（建索引）再快取。
// 併發請求同一名稱只會佈建一次。
func (manager *Manager) GetOrCreate(ctx context.Context, databaseName string) (database *mongo.Database, returnedError error) {
	manager.mu.RLock()
	database, ok := manager.databases[databaseName]
	manager.mu.RUnlock()
	if ok {
		return database, nil
	}

	ctx, span, endSpan := manager.trace.WithSpan(ctx, string(core.SpanTenantProvision))
	defer func() { endSpan(returnedError) }()
	manager.trace.ApplyTraceAttributes(span, core.TraceTenantMeta{Database: databaseName, Status: "provision"})

	value, err, _ := manager.group.Do(databaseName, func() (interface{}, error) {
		// Do 內再檢查一次：前一個 in-flight 呼叫可能剛完成
		manager.mu.RLock()
		cached, hit := manager.databases[databaseName]
		manager.mu.RUnlock()
		if hit {
			return cached, nil
		}

		handle := manager.mongoClient.Client().Database(databaseName)
		if err := manager.provision(ctx, handle); err != nil {
			return nil, err
		}

		manager.mu.Lock()
		manager.databases[databaseName] = handle
		manager.mu.Unlock()
		if manager.metric.TenantConnGauge != nil {
			manager.metric.TenantConnGauge.Inc()
		}
		manager.logger.Info("tenant database provisioned", zap.String("database", databaseName))
		return handle, nil
	})
	if err != nil {
		returnedError = err
		return nil, returnedError
	}
	return value.(*mongo.Database), nil
}

// Evict 移除快取的 handle（刪店補償或測試用）。
func (manager *Manager) Evict(databaseName string) {
	manager.mu.Lock()
	_, ok := manager.databases[databaseName]
	delete(manager.databases, databaseName)
	manager.mu.Unlock()
	if ok && manager.metric.TenantConnGauge != nil {
		manager.metric.TenantConnGauge.Dec()
	}
}

var ProviderSet = wire.NewSet(NewManager)
