// internal/conversation/dispatch-intent/dispatcher.go
package dispatchintent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"weather-fulfillment/internal/common/config"
	apperrors "weather-fulfillment/internal/common/errors"
	"weather-fulfillment/internal/common/metrics"
	"weather-fulfillment/internal/common/observability"
	resolvelocation "weather-fulfillment/internal/location/resolve-location"
	"weather-fulfillment/internal/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	ComponentName = "dispatch-intent"

	outcomeSuccess  = "success"
	outcomeFallback = "fallback"
)

type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

type LocationResolver interface {
	ResolveFromCoordinateString(text string) (models.CoordinatePair, error)
	ResolveFromNamedLocation(ctx context.Context, loc models.NamedLocation) (models.CoordinatePair, error)
}

type WeatherFetcher interface {
	FetchCurrent(ctx context.Context, coords models.CoordinatePair) (models.WeatherResult, error)
}

// Dispatcher routes one IntentRequest to a resolution strategy and always
// produces exactly one FulfillmentResponse. It is safe for concurrent use.
type Dispatcher struct {
	config   *Config
	resolver LocationResolver
	weather  WeatherFetcher
	obs      *observability.Observability
	errors   *apperrors.ErrorHandler
	logger   Logger
}

func NewDispatcher(cfg *Config, resolver LocationResolver, weather WeatherFetcher, obs *observability.Observability, log Logger) *Dispatcher {
	scoped := log.With(map[string]interface{}{
		"component": ComponentName,
	})
	return &Dispatcher{
		config:   cfg,
		resolver: resolver,
		weather:  weather,
		obs:      obs,
		errors:   apperrors.NewErrorHandler(scoped),
		logger:   scoped,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req models.IntentRequest) (resp models.FulfillmentResponse) {
	start := time.Now()
	intent := ParseIntent(req.IntentName)
	outcome := outcomeSuccess

	ctx, span := d.obs.Tracer().Start(ctx, "dispatch "+intent.String())
	span.SetAttributes(
		attribute.String("intent.name", req.IntentName),
		attribute.String("request.id", req.RequestID),
	)

	defer func() {
		if r := recover(); r != nil {
			outcome = strings.ToLower(string(apperrors.ErrCodeInternal))
			d.logger.Error("panic during dispatch", map[string]interface{}{
				"requestId": req.RequestID,
				"panic":     fmt.Sprintf("%v", r),
			})
			resp = models.Failure(RequestErrorText, http.StatusInternalServerError)
		}

		elapsed := time.Since(start)
		if outcome != outcomeSuccess && outcome != outcomeFallback {
			span.SetStatus(codes.Error, outcome)
		}
		span.SetAttributes(
			attribute.String("outcome", outcome),
			attribute.Int("http.status_code", resp.HTTPStatus),
		)
		span.End()

		metrics.WebhookRequests.WithLabelValues(intent.String(), outcome).Inc()
		metrics.WebhookDuration.WithLabelValues(intent.String()).Observe(elapsed.Seconds())
		d.obs.RecordDispatch(ctx, intent.String(), outcome, elapsed)

		d.logger.Info("webhook request dispatched", map[string]interface{}{
			"requestId":  req.RequestID,
			"intent":     req.IntentName,
			"outcome":    outcome,
			"status":     resp.HTTPStatus,
			"durationMs": elapsed.Milliseconds(),
		})
	}()

	if !d.config.APIKeyConfigured {
		return d.fail(req, apperrors.NewConfigurationError(config.APIKeyEnv), &outcome)
	}

	if req.IntentName == "" {
		return d.fail(req, apperrors.NewMalformedRequestError(req.Problems), &outcome)
	}

	switch intent {
	case IntentGreeting:
		return models.Conversational(GreetingText)

	case IntentGetWeather, IntentGetWeatherByCoordinates:
		coords, err := d.resolver.ResolveFromCoordinateString(req.QueryText)
		if err != nil {
			return d.fail(req, err, &outcome)
		}
		return d.weatherFor(ctx, req, givenLocation, coords, &outcome)

	case IntentGetCountryName:
		loc, ok := resolvelocation.NamedLocationFromContexts(req.Contexts)
		if !ok {
			return d.fail(req, apperrors.NewResolutionFailureError(
				"no context carries a complete geo-city/geo-state/geo-country triple", nil), &outcome)
		}
		coords, err := d.resolver.ResolveFromNamedLocation(ctx, loc)
		if err != nil {
			return d.fail(req, err, &outcome)
		}
		return d.weatherFor(ctx, req, namedPlace(loc), coords, &outcome)

	default:
		outcome = outcomeFallback
		return models.Conversational(FallbackText)
	}
}

func (d *Dispatcher) weatherFor(ctx context.Context, req models.IntentRequest, place string, coords models.CoordinatePair, outcome *string) models.FulfillmentResponse {
	result, err := d.weather.FetchCurrent(ctx, coords)
	if err != nil {
		return d.fail(req, err, outcome)
	}
	return models.Conversational(weatherText(place, result))
}

// fail logs err and maps it onto the fixed response for its class.
func (d *Dispatcher) fail(req models.IntentRequest, err error, outcome *string) models.FulfillmentResponse {
	stdErr := d.errors.Handle(err, map[string]interface{}{
		"requestId": req.RequestID,
		"intent":    req.IntentName,
	})

	if errors.Is(err, apperrors.ErrParseFailure) {
		*outcome = strings.ToLower(string(apperrors.ErrCodeParseFailure))
		return models.Conversational(InvalidCoordinatesText)
	}

	*outcome = strings.ToLower(string(stdErr.Code))
	return ResponseFor(stdErr.Code)
}

// ResponseFor returns the fixed fulfillment for a failure class.
func ResponseFor(code apperrors.ErrorCode) models.FulfillmentResponse {
	switch code {
	case apperrors.ErrCodeParseFailure:
		return models.Conversational(InvalidCoordinatesText)
	case apperrors.ErrCodeResolutionFailure:
		return models.Conversational(FetchFailedText)
	case apperrors.ErrCodeProviderError, apperrors.ErrCodeMalformedResponse:
		return models.Failure(FetchFailedText, apperrors.HTTPStatusFor(code))
	case apperrors.ErrCodeConfiguration:
		return models.Failure(MissingAPIKeyText, apperrors.HTTPStatusFor(code))
	default:
		return models.Failure(RequestErrorText, apperrors.HTTPStatusFor(code))
	}
}
