// internal/weather/fetch-current/config.go
package fetchcurrent

import "weather-fulfillment/internal/common/config"

type Config struct {
	WeatherBaseURL string
	APIKey         string
	Units          string
}

func NewConfig(cfg *config.Config) *Config {
	return &Config{
		WeatherBaseURL: cfg.OpenWeather.WeatherBaseURL,
		APIKey:         cfg.OpenWeather.APIKey,
		Units:          cfg.OpenWeather.Units,
	}
}
