package config

type Mail struct {
	Enabled bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Domain  string `mapstructure:"DOMAIN" json:"domain" yaml:"domain"`
	APIKey  string `mapstructure:"API_KEY" json:"api_key" yaml:"api_key"`
	// 寄件人位址
	Sender string `mapstructure:"SENDER" json:"sender" yaml:"sender"`
	// 聯絡表單通知收件人
	ContactRecipient string `mapstructure:"CONTACT_RECIPIENT" json:"contact_recipient" yaml:"contact_recipient"`
}
