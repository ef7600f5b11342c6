package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/database/client"
	"storefront/internal/database/mongodb/model"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTenantTestContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	return c, recorder
}

func newTestTenant() *Tenant {
	return &Tenant{
		trace:        &telemetry.Trace{},
		metric:       telemetry.NewMetric(nil),
		bodyField:    defaultTenantBodyField,
		headerName:   defaultTenantHeader,
		skipPrefixes: builtinSkipPrefixes,
	}
}

func TestExtractIdentifierFromBody(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodPost, "/shop/orders", `{"subdomain":"acme","customerId":"x"}`)
	c.Request.Header.Set("Content-Type", "application/json")

	identifier, source := m.extractIdentifier(c)
	assert.Equal(t, "acme", identifier)
	assert.Equal(t, "body", source)

	// body 需回填，下游綁定才讀得到
	data, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subdomain":"acme","customerId":"x"}`, string(data))
}

func TestExtractIdentifierIgnoresNonJSONBody(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodPost, "/shop/orders", `subdomain=acme`)
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request.Header.Set(defaultTenantHeader, "bravo")

	identifier, source := m.extractIdentifier(c)
	assert.Equal(t, "bravo", identifier)
	assert.Equal(t, "header", source)
}

func TestExtractIdentifierFromOrigin(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Header.Set("Origin", "https://acme.shops.example.com")

	identifier, source := m.extractIdentifier(c)
	assert.Equal(t, "acme", identifier)
	assert.Equal(t, "origin", source)
}

func TestExtractIdentifierFromHost(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "bravo.shops.example.com"

	identifier, source := m.extractIdentifier(c)
	assert.Equal(t, "bravo", identifier)
	assert.Equal(t, "host", source)
}

func TestExtractIdentifierSkipsLocalhostAndIP(t *testing.T) {
	m := newTestTenant()

	for _, host := range []string{"localhost:3000", "127.0.0.1:8080", "example.com"} {
		c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
		c.Request.Host = host
		c.Request.Header.Set(defaultTenantHeader, "charlie")

		identifier, source := m.extractIdentifier(c)
		assert.Equal(t, "charlie", identifier, host)
		assert.Equal(t, "header", source, host)
	}
}

func TestExtractIdentifierPrecedence(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodPost, "/shop/orders", `{"subdomain":"from-body"}`)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set("Origin", "https://from-origin.shops.example.com")
	c.Request.Host = "from-host.shops.example.com"
	c.Request.Header.Set(defaultTenantHeader, "from-header")

	identifier, source := m.extractIdentifier(c)
	assert.Equal(t, "from-body", identifier)
	assert.Equal(t, "body", source)
}

func TestExtractIdentifierEmpty(t *testing.T) {
	m := newTestTenant()
	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "localhost:3000"

	identifier, source := m.extractIdentifier(c)
	assert.Empty(t, identifier)
	assert.Empty(t, source)
}

func TestHandlerSkipsConfiguredPrefixes(t *testing.T) {
	m := newTestTenant()
	handler := m.Handler()

	for _, path := range []string{"/metrics", "/health-check/liveness", "/auth/login", "/admin/users", "/api/blogs", "/swagger/index.html"} {
		c, _ := newTenantTestContext(t, http.MethodGet, path, "")
		handler(c)
		assert.False(t, c.IsAborted(), path)
		_, hasShop := c.Get("tenant_shop")
		assert.False(t, hasShop, path)
	}
}

func TestHandlerMissingIdentifierAborts(t *testing.T) {
	m := newTestTenant()
	handler := m.Handler()

	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "localhost:3000"
	handler(c)

	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
}

func TestHandlerSanitizesIdentifierBeforeLookup(t *testing.T) {
	m := newTestTenant()
	handler := m.Handler()

	// 全部字元都被清掉，等同缺識別
	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "localhost:3000"
	c.Request.Header.Set(defaultTenantHeader, "!!!")
	handler(c)

	assert.True(t, c.IsAborted())
}

type fakeDirectory struct {
	shop *model.Shop
	err  error
}

func (d *fakeDirectory) FindBySubdomain(ctx context.Context, subdomain string) (*model.Shop, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.shop, nil
}

type fakeConnections struct {
	database *mongo.Database
	calls    []string
}

func (f *fakeConnections) GetOrCreate(ctx context.Context, databaseName string) (*mongo.Database, error) {
	f.calls = append(f.calls, databaseName)
	return f.database, nil
}

func newResolvingTenant(dir *fakeDirectory, conns *fakeConnections) *Tenant {
	return &Tenant{
		logger:       zap.NewNop(),
		trace:        &telemetry.Trace{},
		metric:       telemetry.NewMetric(nil),
		shopRepo:     dir,
		tenants:      conns,
		bodyField:    defaultTenantBodyField,
		headerName:   defaultTenantHeader,
		skipPrefixes: builtinSkipPrefixes,
	}
}

// mongo driver 為延遲連線，不會真的撥號
func testTenantDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	conf := &config.Configuration{}
	conf.MongoDB.URI = "mongodb://localhost:27017"
	mongoClient, cleanup, err := client.NewMongoClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return mongoClient.Client().Database("shop_shopx")
}

func lastResolveError(t *testing.T, c *gin.Context) *cErr.Error {
	t.Helper()
	require.NotEmpty(t, c.Errors)
	return cErr.From(c.Errors.Last().Err)
}

func TestHandlerUnknownTenantAborts404WithoutConnection(t *testing.T) {
	conns := &fakeConnections{}
	m := newResolvingTenant(&fakeDirectory{err: mongo.ErrNoDocuments}, conns)

	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "shopx.example.com"
	m.Handler()(c)

	assert.True(t, c.IsAborted())
	appErr := lastResolveError(t, c)
	assert.Equal(t, http.StatusNotFound, appErr.HttpCode())
	assert.Equal(t, cErr.TENANT_NOT_FOUND, appErr.ErrorCode())
	// 查無租戶時不得建立或快取任何連線
	assert.Empty(t, conns.calls)
	assert.Nil(t, TenantStores(c))
}

func TestHandlerInactiveTenantAborts403(t *testing.T) {
	conns := &fakeConnections{}
	m := newResolvingTenant(&fakeDirectory{shop: &model.Shop{
		Subdomain:    "shopx",
		DatabaseName: "shop_shopx",
		IsActive:     false,
	}}, conns)

	c, _ := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "shopx.example.com"
	m.Handler()(c)

	assert.True(t, c.IsAborted())
	appErr := lastResolveError(t, c)
	assert.Equal(t, http.StatusForbidden, appErr.HttpCode())
	assert.Equal(t, cErr.TENANT_INACTIVE, appErr.ErrorCode())
	assert.Empty(t, conns.calls)
	assert.Nil(t, TenantStores(c))
}

func TestHandlerResolvesFromOriginAndSetsHeader(t *testing.T) {
	conns := &fakeConnections{database: testTenantDatabase(t)}
	m := newResolvingTenant(&fakeDirectory{shop: &model.Shop{
		Subdomain:    "shopx",
		DatabaseName: "shop_shopx",
		IsActive:     true,
	}}, conns)

	c, recorder := newTenantTestContext(t, http.MethodGet, "/shop/products", "")
	c.Request.Host = "localhost:3000"
	c.Request.Header.Set("Origin", "https://shopx.example.com")
	m.Handler()(c)

	assert.False(t, c.IsAborted())
	assert.Empty(t, c.Errors)
	assert.Equal(t, "shopx", recorder.Header().Get("X-Tenant-ID"))
	assert.Equal(t, []string{"shop_shopx"}, conns.calls)
	require.NotNil(t, TenantStores(c))

	subdomain, ok := c.Get("tenant_subdomain")
	require.True(t, ok)
	assert.Equal(t, "shopx", subdomain)
}
