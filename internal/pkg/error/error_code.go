package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY          = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS        = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS       = 40002 // 400 - 無效的請求標頭
	CONFLICT                  = 40003 // 400 - 唯一性衝突
	TENANT_IDENTIFIER_MISSING = 40004 // 400 - 缺少租戶識別

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效
	FORBIDDEN       = 40300 // 403 - 禁止訪問
	TENANT_INACTIVE = 40301 // 403 - 租戶已停用

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND        = 40400 // 404 - 資源未找到
	TENANT_NOT_FOUND = 40401 // 404 - 租戶未找到

	// 42200 ~ 42299: 輸入驗證錯誤 (422 系列)
	VALIDATION_FAILED = 42200 // 422 - 輸入驗證失敗

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR          = 50000 // 500 - 內部錯誤
	DATABASE_ERROR          = 50001 // 500 - 資料庫錯誤
	TENANT_CONNECTION_ERROR = 50002 // 500 - 租戶資料庫連線錯誤
	SERVICE_UNAVAILABLE     = 50003 // 503 - 服務暫停 (維護模式)

	// 50200 ~ 50499: 外部請求錯誤 (502 系列)
	MAIL_SEND_ERROR = 50200 // 502 - 郵件寄送失敗
)
