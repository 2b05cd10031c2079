// internal/location/resolve-location/geocoder.go
package resolvelocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperrors "weather-fulfillment/internal/common/errors"
	commonhttp "weather-fulfillment/internal/common/http"
	"weather-fulfillment/internal/models"
)

const ProviderName = "openweathermap-geocoding"

// Geocoder turns a named location into candidate coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, loc models.NamedLocation) ([]Candidate, error)
}

// OpenWeatherGeocoder calls GET {base}/geo/1.0/direct.
type OpenWeatherGeocoder struct {
	config *Config
	client *commonhttp.Client
}

func NewOpenWeatherGeocoder(config *Config, client *commonhttp.Client) *OpenWeatherGeocoder {
	return &OpenWeatherGeocoder{config: config, client: client}
}

// Geocode returns the candidates in provider order. A non-200 status is a
// PROVIDER_ERROR; a failed call or a body that is not a candidate list is a
// RESOLUTION_FAILURE.
func (g *OpenWeatherGeocoder) Geocode(ctx context.Context, loc models.NamedLocation) ([]Candidate, error) {
	limit := g.config.Limit
	if limit <= 0 {
		limit = 1
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s,%s", loc.City, loc.State, loc.Country))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("appid", g.config.APIKey)

	resp, err := g.client.Get(ctx, ProviderName, g.config.GeoBaseURL+"/geo/1.0/direct", query)
	if err != nil {
		return nil, apperrors.NewResolutionFailureError("geocoding request failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewProviderError(ProviderName, resp.StatusCode, providerMessage(resp.Body))
	}

	var candidates []Candidate
	if err := json.Unmarshal(resp.Body, &candidates); err != nil {
		return nil, apperrors.NewResolutionFailureError("malformed geocoding response", err)
	}
	return candidates, nil
}

func providerMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "Failed to fetch geocoding data"
}
