package config

type JWT struct {
	// 簽章密鑰
	Secret string `mapstructure:"SECRET" json:"secret" yaml:"secret"`
	// Access Token 有效秒數
	AccessTTL int64 `mapstructure:"ACCESS_TTL" json:"access_ttl" yaml:"access_ttl"`
	// Refresh Token 有效秒數
	RefreshTTL int64 `mapstructure:"REFRESH_TTL" json:"refresh_ttl" yaml:"refresh_ttl"`
	Issuer     string `mapstructure:"ISSUER" json:"issuer" yaml:"issuer"`
}
