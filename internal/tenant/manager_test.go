package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/database/client"
	"storefront/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// newTestManager 以本機 URI 建立 client（mongo driver 為延遲連線，不會真的撥號）
func newTestManager(t *testing.T, provision func(ctx context.Context, database *mongo.Database) error) *Manager {
	t.Helper()
	conf := &config.Configuration{}
	conf.MongoDB.URI = "mongodb://localhost:27017"

	mongoClient, cleanup, err := client.NewMongoClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	manager := NewManager(zap.NewNop(), &telemetry.Trace{}, telemetry.NewMetric(nil), conf, mongoClient)
	if provision != nil {
		manager.provision = provision
	}
	return manager
}

func TestDatabaseName(t *testing.T) {
	manager := newTestManager(t, nil)

	assert.Equal(t, "shop_acme", manager.DatabaseName("acme"))

	manager.config.Tenant.DatabasePrefix = "tenant_"
	assert.Equal(t, "tenant_acme", manager.DatabaseName("acme"))
}

func TestGetOrCreateCachesHandle(t *testing.T) {
	var calls int32
	manager := newTestManager(t, func(ctx context.Context, database *mongo.Database) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	first, err := manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrCreateProvisionsConcurrentlyOnce(t *testing.T) {
	var calls int32
	manager := newTestManager(t, func(ctx context.Context, database *mongo.Database) error {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond) // 放大併發視窗
		return nil
	})

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := manager.GetOrCreate(context.Background(), "shop_acme")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrCreateSeparateDatabases(t *testing.T) {
	var calls int32
	manager := newTestManager(t, func(ctx context.Context, database *mongo.Database) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	first, err := manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)
	second, err := manager.GetOrCreate(context.Background(), "shop_bravo")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetOrCreateProvisionFailureNotCached(t *testing.T) {
	boom := errors.New("index build failed")
	var calls int32
	manager := newTestManager(t, func(ctx context.Context, database *mongo.Database) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return boom
		}
		return nil
	})

	_, err := manager.GetOrCreate(context.Background(), "shop_acme")
	assert.ErrorIs(t, err, boom)

	// 失敗不落快取，下一次重新佈建
	database, err := manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)
	assert.NotNil(t, database)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestEvictForcesReprovision(t *testing.T) {
	var calls int32
	manager := newTestManager(t, func(ctx context.Context, database *mongo.Database) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	_, err := manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)

	manager.Evict("shop_acme")

	_, err = manager.GetOrCreate(context.Background(), "shop_acme")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
