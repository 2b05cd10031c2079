// internal/location/resolve-location/config.go
package resolvelocation

import "weather-fulfillment/internal/common/config"

type Config struct {
	GeoBaseURL string
	APIKey     string
	Limit      int
}

// NewConfig derives the geocoder settings from the application config.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		GeoBaseURL: cfg.OpenWeather.GeoBaseURL,
		APIKey:     cfg.OpenWeather.APIKey,
		Limit:      1,
	}
}
