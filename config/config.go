package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	JWT       JWT             `mapstructure:"JWT" json:"jwt" yaml:"jwt"`
	Tenant    Tenant          `mapstructure:"TENANT" json:"tenant" yaml:"tenant"`
	Mail      Mail            `mapstructure:"MAIL" json:"mail" yaml:"mail"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
