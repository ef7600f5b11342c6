package config

type MongoDB struct {
	URI     string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	// 中央目錄資料庫名稱（users / shops / blogs ...）
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
}
