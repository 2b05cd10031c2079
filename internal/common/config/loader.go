// internal/common/config/loader.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultWeatherBaseURL = "https://api.openweathermap.org"
	DefaultGeoBaseURL     = "http://api.openweathermap.org"

	// APIKeyEnv is the process-wide credential variable.
	APIKeyEnv = "OPENWEATHERMAP_API_KEY"
)

// Load reads configs/config.yaml, configs/config.<APP_ENVIRONMENT>.yaml,
// .env and the process environment, in increasing precedence.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "weather-fulfillment")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5000)
	v.SetDefault("server.shutdown_timeout", 10000)

	v.SetDefault("openweather.api_key", "")
	v.SetDefault("openweather.weather_base_url", DefaultWeatherBaseURL)
	v.SetDefault("openweather.geo_base_url", DefaultGeoBaseURL)
	v.SetDefault("openweather.units", "metric")
	v.SetDefault("openweather.timeout", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("observability.service_name", "weather-fulfillment")
	v.SetDefault("observability.trace_sample_ratio", 1.0)
}

// loadEnvFile loads the first .env found walking up from the working directory.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig reads the conventional variable names that do not
// follow the section_key scheme.
func overrideEmptyConfig(cfg *Config) {
	if cfg.OpenWeather.APIKey == "" {
		if val := os.Getenv(APIKeyEnv); val != "" {
			cfg.OpenWeather.APIKey = val
		}
	}

	if val := os.Getenv("PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = port
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	if cfg.OpenWeather.WeatherBaseURL == "" {
		cfg.OpenWeather.WeatherBaseURL = DefaultWeatherBaseURL
	}
	if cfg.OpenWeather.GeoBaseURL == "" {
		cfg.OpenWeather.GeoBaseURL = DefaultGeoBaseURL
	}
	if cfg.OpenWeather.Units == "" {
		cfg.OpenWeather.Units = "metric"
	}
	cfg.OpenWeather.WeatherBaseURL = strings.TrimRight(cfg.OpenWeather.WeatherBaseURL, "/")
	cfg.OpenWeather.GeoBaseURL = strings.TrimRight(cfg.OpenWeather.GeoBaseURL, "/")

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = "weather-fulfillment"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	for name, raw := range map[string]string{
		"openweather.weather_base_url": cfg.OpenWeather.WeatherBaseURL,
		"openweather.geo_base_url":     cfg.OpenWeather.GeoBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	if cfg.OpenWeather.Units != "metric" {
		return fmt.Errorf("openweather.units must be metric, got %q", cfg.OpenWeather.Units)
	}
	if cfg.OpenWeather.Timeout < 0 {
		return fmt.Errorf("openweather.timeout must not be negative")
	}

	if r := cfg.Observability.TraceSampleRatio; r < 0 || r > 1 {
		return fmt.Errorf("observability.trace_sample_ratio must be within [0,1], got %v", r)
	}

	return nil
}
