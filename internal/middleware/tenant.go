package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/pkg/response"
	"storefront/internal/telemetry"
	"storefront/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 永遠不做租戶解析的路徑前綴；config.Tenant.SkipPrefixes 可再附加
var builtinSkipPrefixes = []string{
	"/swagger",
	"/metrics",
	"/version",
	"/health-check",
	"/auth",
	"/admin",
	"/api",
	"/debug",
}

const (
	defaultTenantBodyField = "subdomain"
	defaultTenantHeader    = "X-Shop-Subdomain"
	tenantResponseHeader   = "X-Tenant-ID"
)

// shopDirectory 目錄查詢的最小依賴
type shopDirectory interface {
	FindBySubdomain(ctx context.Context, subdomain string) (*model.Shop, error)
}

// tenantConnections 租戶連線管理的最小依賴
type tenantConnections interface {
	GetOrCreate(ctx context.Context, databaseName string) (*mongo.Database, error)
}

type Tenant struct {
	logger       *zap.Logger
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	shopRepo     shopDirectory
	tenants      tenantConnections
	bodyField    string
	headerName   string
	skipPrefixes []string
}

func NewTenant(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	shopRepo *repository.ShopRepository,
	tenants *tenant.Manager,
) *Tenant {
	bodyField := conf.Tenant.BodyField
	if bodyField == "" {
		bodyField = defaultTenantBodyField
	}
	headerName := conf.Tenant.Header
	if headerName == "" {
		headerName = defaultTenantHeader
	}
	skip := append([]string{}, builtinSkipPrefixes...)
	for _, prefix := range strings.Split(conf.Tenant.SkipPrefixes, ",") {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			skip = append(skip, prefix)
		}
	}
	return &Tenant{
		logger:       logger,
		trace:        trace,
		metric:       metric,
		shopRepo:     shopRepo,
		tenants:      tenants,
		bodyField:    bodyField,
		headerName:   headerName,
		skipPrefixes: skip,
	}
}

// countResolve 記錄解析結果；metric 未啟用時略過
func (m *Tenant) countResolve(outcome string) {
	if m.metric.TenantResolveTotal != nil {
		m.metric.TenantResolveTotal.WithLabelValues(outcome).Inc()
	}
}

// Handler 依序：跳過清單 → 抽取識別（body → Origin → Host → header）→
// 清洗 → 目錄查詢（404/403）→ 佈建連線 → 掛上 context 與 X-Tenant-ID header。
func (m *Tenant) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range m.skipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanTenantMiddleware))

		identifier, source := m.extractIdentifier(c)
		meta := core.TraceTenantMeta{Identifier: identifier, Source: source}

		identifier = tenant.Sanitize(identifier)
		if identifier == "" {
			meta.Status = "missing"
			m.trace.ApplyTraceAttributes(span, meta)
			m.countResolve("missing")
			end(nil)
			response.AbortWithError(c, cErr.TenantIdentifierMissing("no tenant identifier in request"))
			return
		}
		meta.Identifier = identifier

		shop, err := m.shopRepo.FindBySubdomain(ctx, identifier)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				meta.Status = "not_found"
				m.trace.ApplyTraceAttributes(span, meta)
				m.countResolve("not_found")
				end(nil)
				response.AbortWithError(c, cErr.TenantNotFound("shop not found: "+identifier))
				return
			}
			meta.Status = "error"
			m.trace.ApplyTraceAttributes(span, meta)
			m.countResolve("error")
			end(err)
			response.AbortWithError(c, cErr.DatabaseError("tenant lookup failed"))
			return
		}
		if !shop.IsActive {
			meta.Status = "inactive"
			m.trace.ApplyTraceAttributes(span, meta)
			m.countResolve("inactive")
			end(nil)
			response.AbortWithError(c, cErr.TenantInactive("shop is deactivated: "+identifier))
			return
		}

		database, err := m.tenants.GetOrCreate(ctx, shop.DatabaseName)
		if err != nil {
			meta.Status = "conn_error"
			m.trace.ApplyTraceAttributes(span, meta)
			m.countResolve("conn_error")
			end(err)
			response.AbortWithError(c, cErr.TenantConnectionError("tenant database unavailable"))
			return
		}

		meta.Database = shop.DatabaseName
		meta.Status = "resolved"
		m.trace.ApplyTraceAttributes(span, meta)
		m.countResolve("resolved")
		end(nil)

		c.Set(core.ContextShopKey, shop)
		c.Set(core.ContextTenantKey, shop.Subdomain)
		c.Set(core.ContextTenantDBKey, repository.NewTenantSet(database))
		c.Header(tenantResponseHeader, shop.Subdomain)

		c.Next()

		// 完成 log：營運追蹤用
		m.logger.Info("tenant request completed",
			zap.String("tenant", shop.Subdomain),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("source", source))
	}
}

// extractIdentifier 依優先序取得原始識別字串與來源
func (m *Tenant) extractIdentifier(c *gin.Context) (string, string) {
	if value := m.fromBody(c); value != "" {
		return value, "body"
	}
	if value := tenant.HostSubdomain(originHost(c.GetHeader("Origin"))); value != "" {
		return value, "origin"
	}
	if value := tenant.HostSubdomain(c.Request.Host); value != "" {
		return value, "host"
	}
	if value := c.GetHeader(m.headerName); value != "" {
		return value, "header"
	}
	return "", ""
}

// fromBody 從 JSON body 取租戶欄位；讀過的 body 回填供下游綁定
func (m *Tenant) fromBody(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return ""
	}
	if !strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") {
		return ""
	}
	data, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	var value string
	if raw, ok := payload[m.bodyField]; ok {
		_ = json.Unmarshal(raw, &value)
	}
	return value
}

// originHost 取 Origin header 的 host 部分
func originHost(origin string) string {
	if origin == "" {
		return ""
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// TenantStores 取出 tenant middleware 掛上的 stores；未解析回 nil
func TenantStores(c *gin.Context) *repository.TenantSet {
	if value, ok := c.Get(core.ContextTenantDBKey); ok {
		if stores, ok := value.(*repository.TenantSet); ok {
			return stores
		}
	}
	return nil
}
