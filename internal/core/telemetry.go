package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
	SpanTenantMiddleware   TraceSpanName = "tenant_middleware"
	SpanTenantProvision    TraceSpanName = "tenant_provision"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricTenantResolveTotal  MetricName = "tenant_resolve_total"
	MetricTenantConnGauge     MetricName = "tenant_connections"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelOutcome  MetricLabelName = "outcome"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceAuthMeta struct {
	UserID string `trace:"auth.user_id,omitempty"`
	Role   string `trace:"auth.role,omitempty"`
	Status string `trace:"auth.status"`
}

type TraceTenantMeta struct {
	Identifier string `trace:"tenant.identifier,omitempty"`
	Source     string `trace:"tenant.identifier_source,omitempty"`
	Database   string `trace:"tenant.database,omitempty"`
	Status     string `trace:"tenant.status"`
}

type TraceLoginAttemptMeta struct {
	Email     string `trace:"auth.email_hash,omitempty"`
	Remaining int    `trace:"ratelimit.remaining"`
	TTL       int64  `trace:"ratelimit.ttl_sec"`
	Op        string `trace:"ratelimit.op"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TracePaginateMeta struct {
	Entity      string `trace:"paginate.entity"`
	Page        int64  `trace:"paginate.page"`
	Limit       int64  `trace:"paginate.limit"`
	Total       int64  `trace:"paginate.total"`
	ResultCount int    `trace:"paginate.result_count"`
	Search      string `trace:"paginate.search,omitempty"`
}

type TraceShopProvisionMeta struct {
	Subdomain  string `trace:"shop.subdomain"`
	Database   string `trace:"shop.database"`
	OwnerID    string `trace:"shop.owner_id"`
	Attempts   int    `trace:"shop.slug_attempts"`
	Compensate bool   `trace:"shop.compensated"`
}
