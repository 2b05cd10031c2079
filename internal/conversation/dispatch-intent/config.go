// internal/conversation/dispatch-intent/config.go
package dispatchintent

import "weather-fulfillment/internal/common/config"

type Config struct {
	// APIKeyConfigured is false when OPENWEATHERMAP_API_KEY is unset; every
	// request is then answered with the configuration error.
	APIKeyConfigured bool
}

func NewConfig(cfg *config.Config) *Config {
	return &Config{APIKeyConfigured: cfg.OpenWeather.HasAPIKey()}
}
