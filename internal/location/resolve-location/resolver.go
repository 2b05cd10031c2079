// internal/location/resolve-location/resolver.go
package resolvelocation

import (
	"context"
	"fmt"

	apperrors "weather-fulfillment/internal/common/errors"
	"weather-fulfillment/internal/models"
	"weather-fulfillment/pkg/dms"
)

const ComponentName = "resolve-location"

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Resolver turns user supplied locations into decimal coordinates. It holds
// no per-request state.
type Resolver struct {
	geocoder Geocoder
	logger   Logger
}

func NewResolver(geocoder Geocoder, log Logger) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		logger: log.With(map[string]interface{}{
			"component": ComponentName,
		}),
	}
}

// ResolveFromCoordinateString parses a DMS coordinate string. A grammar
// failure is returned as RESOLUTION_FAILURE wrapping PARSE_FAILURE.
func (r *Resolver) ResolveFromCoordinateString(text string) (models.CoordinatePair, error) {
	lat, lon, err := dms.Parse(text)
	if err != nil {
		r.logger.Debug("coordinate string rejected", map[string]interface{}{
			"input": text,
		})
		return models.CoordinatePair{}, apperrors.NewResolutionFailureError("parse",
			apperrors.NewParseFailureError(text, err))
	}
	return models.CoordinatePair{Latitude: lat, Longitude: lon}, nil
}

// ResolveFromNamedLocation geocodes loc and takes the first candidate.
func (r *Resolver) ResolveFromNamedLocation(ctx context.Context, loc models.NamedLocation) (models.CoordinatePair, error) {
	if !loc.Complete() {
		return models.CoordinatePair{}, apperrors.NewResolutionFailureError("incomplete named location", nil)
	}

	candidates, err := r.geocoder.Geocode(ctx, loc)
	if err != nil {
		r.logger.Warn("geocoding failed", map[string]interface{}{
			"city":    loc.City,
			"state":   loc.State,
			"country": loc.Country,
			"error":   err,
		})
		return models.CoordinatePair{}, err
	}

	if len(candidates) == 0 {
		return models.CoordinatePair{}, apperrors.NewResolutionFailureError(
			fmt.Sprintf("no geocoding candidates for %s,%s,%s", loc.City, loc.State, loc.Country), nil)
	}

	first := candidates[0]
	if first.Lat == nil || first.Lon == nil {
		return models.CoordinatePair{}, apperrors.NewResolutionFailureError("geocoding candidate lacks lat/lon", nil)
	}

	r.logger.Debug("location resolved", map[string]interface{}{
		"city":       loc.City,
		"candidates": len(candidates),
		"lat":        *first.Lat,
		"lon":        *first.Lon,
	})
	return models.CoordinatePair{Latitude: *first.Lat, Longitude: *first.Lon}, nil
}
