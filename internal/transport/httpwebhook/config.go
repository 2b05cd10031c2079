// internal/transport/httpwebhook/config.go
package httpwebhook

import "weather-fulfillment/internal/common/config"

type Config struct {
	APIKeyConfigured bool
	MaxBodyBytes     int64
}

func NewConfig(cfg *config.Config) *Config {
	return &Config{
		APIKeyConfigured: cfg.OpenWeather.HasAPIKey(),
		MaxBodyBytes:     1 << 20,
	}
}
