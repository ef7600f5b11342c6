package config

type Tenant struct {
	// 租戶資料庫名稱前綴，實際名稱為 <prefix><subdomain>
	DatabasePrefix string `mapstructure:"DATABASE_PREFIX" json:"database_prefix" yaml:"database_prefix"`
	// 請求 body 內的租戶欄位名稱
	BodyField string `mapstructure:"BODY_FIELD" json:"body_field" yaml:"body_field"`
	// 租戶識別 Header
	Header string `mapstructure:"HEADER" json:"header" yaml:"header"`
	// 跳過租戶解析的路徑前綴（逗號分隔，附加於內建清單之後）
	SkipPrefixes string `mapstructure:"SKIP_PREFIXES" json:"skip_prefixes" yaml:"skip_prefixes"`
	// 軟刪除保留天數，purge cron 超過即硬刪除
	PurgeRetentionDays int `mapstructure:"PURGE_RETENTION_DAYS" json:"purge_retention_days" yaml:"purge_retention_days"`
	// purge cron 排程（cron 表達式，含秒）
	PurgeSchedule string `mapstructure:"PURGE_SCHEDULE" json:"purge_schedule" yaml:"purge_schedule"`
}
