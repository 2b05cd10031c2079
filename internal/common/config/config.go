// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	OpenWeather   OpenWeatherConfig   `mapstructure:"openweather"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port              int `mapstructure:"port"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout"` // milliseconds
	ShutdownTimeout   int `mapstructure:"shutdown_timeout"`    // milliseconds
}

// OpenWeatherConfig holds the provider credential and endpoints. An empty
// APIKey is allowed at load time; every webhook call then answers with the
// configuration-error response.
type OpenWeatherConfig struct {
	APIKey         string `mapstructure:"api_key"`
	WeatherBaseURL string `mapstructure:"weather_base_url"`
	GeoBaseURL     string `mapstructure:"geo_base_url"`
	Units          string `mapstructure:"units"`
	Timeout        int    `mapstructure:"timeout"` // milliseconds, 0 = transport default
}

// HasAPIKey reports whether the provider credential is configured.
func (o OpenWeatherConfig) HasAPIKey() bool {
	return o.APIKey != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ObservabilityConfig struct {
	ServiceName      string  `mapstructure:"service_name"`
	TraceSampleRatio float64 `mapstructure:"trace_sample_ratio"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
