// internal/weather/fetch-current/client.go
package fetchcurrent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apperrors "weather-fulfillment/internal/common/errors"
	commonhttp "weather-fulfillment/internal/common/http"
	"weather-fulfillment/internal/models"
)

const (
	ProviderName   = "openweathermap"
	ComponentName  = "fetch-current"
	currentPath    = "/data/2.5/weather"
	defaultMessage = "Failed to fetch weather data"
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Client reads current conditions from OpenWeatherMap. One outbound call per
// method invocation, no retries.
type Client struct {
	config *Config
	http   *commonhttp.Client
	logger Logger
}

func NewClient(config *Config, httpClient *commonhttp.Client, log Logger) *Client {
	return &Client{
		config: config,
		http:   httpClient,
		logger: log.With(map[string]interface{}{
			"component": ComponentName,
		}),
	}
}

// FetchCurrent returns the description and Celsius temperature at coords.
func (c *Client) FetchCurrent(ctx context.Context, coords models.CoordinatePair) (models.WeatherResult, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("appid", c.config.APIKey)
	query.Set("units", c.units())

	body, err := c.get(ctx, query)
	if err != nil {
		return models.WeatherResult{}, err
	}

	var payload currentWeatherResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.WeatherResult{}, apperrors.NewMalformedResponseError(ProviderName, "body is not a weather object")
	}
	if len(payload.Weather) == 0 || payload.Weather[0].Description == nil {
		return models.WeatherResult{}, apperrors.NewMalformedResponseError(ProviderName, "missing weather[0].description")
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return models.WeatherResult{}, apperrors.NewMalformedResponseError(ProviderName, "missing main.temp")
	}

	result := models.WeatherResult{
		Description:        *payload.Weather[0].Description,
		TemperatureCelsius: *payload.Main.Temp,
	}
	c.logger.Debug("current weather fetched", map[string]interface{}{
		"lat":         coords.Latitude,
		"lon":         coords.Longitude,
		"description": result.Description,
		"temp":        result.TemperatureCelsius,
	})
	return result, nil
}

// FetchRaw passes lat and lon through unvalidated and returns the provider
// body untouched. Units are left to the provider default.
func (c *Client) FetchRaw(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("appid", c.config.APIKey)

	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, apperrors.NewMalformedResponseError(ProviderName, "body is not JSON")
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, query url.Values) ([]byte, error) {
	resp, err := c.http.Get(ctx, ProviderName, c.config.WeatherBaseURL+currentPath, query)
	if err != nil {
		c.logger.Warn("weather request failed", map[string]interface{}{
			"error": err,
		})
		return nil, apperrors.NewTransportError(ProviderName, err)
	}

	if resp.StatusCode != http.StatusOK {
		message := defaultMessage
		var payload errorResponse
		if err := json.Unmarshal(resp.Body, &payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
		c.logger.Warn("weather provider returned an error", map[string]interface{}{
			"status":  resp.StatusCode,
			"message": message,
		})
		return nil, apperrors.NewProviderError(ProviderName, resp.StatusCode, message)
	}
	return resp.Body, nil
}

func (c *Client) units() string {
	if c.config.Units == "" {
		return "metric"
	}
	return c.config.Units
}
