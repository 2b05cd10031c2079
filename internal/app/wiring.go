// internal/app/wiring.go
package app

import (
	"net/http"

	"weather-fulfillment/internal/common/config"
	commonhttp "weather-fulfillment/internal/common/http"
	"weather-fulfillment/internal/common/logger"
	"weather-fulfillment/internal/common/observability"
	dispatchintent "weather-fulfillment/internal/conversation/dispatch-intent"
	resolvelocation "weather-fulfillment/internal/location/resolve-location"
	"weather-fulfillment/internal/transport/httpwebhook"
	"weather-fulfillment/internal/transport/lambdawebhook"
	fetchcurrent "weather-fulfillment/internal/weather/fetch-current"
)

// Components is the wired fulfillment pipeline shared by every host process.
type Components struct {
	Dispatcher *dispatchintent.Dispatcher
	Resolver   *resolvelocation.Resolver
	Weather    *fetchcurrent.Client

	cfg *config.Config
	log logger.Logger
}

// Build wires providers, resolver and dispatcher from cfg. obs may be nil.
func Build(cfg *config.Config, log logger.Logger, obs *observability.Observability) *Components {
	httpClient := commonhttp.NewClient(
		config.GetDuration(cfg.OpenWeather.Timeout),
		commonhttp.WithTracer(obs.Tracer()),
	)

	geocoder := resolvelocation.NewOpenWeatherGeocoder(resolvelocation.NewConfig(cfg), httpClient)
	resolver := resolvelocation.NewResolver(geocoder, &resolverLoggerAdapter{log})
	weather := fetchcurrent.NewClient(fetchcurrent.NewConfig(cfg), httpClient, &weatherLoggerAdapter{log})

	dispatcher := dispatchintent.NewDispatcher(
		dispatchintent.NewConfig(cfg),
		resolver,
		weather,
		obs,
		&dispatcherLoggerAdapter{log},
	)

	return &Components{
		Dispatcher: dispatcher,
		Resolver:   resolver,
		Weather:    weather,
		cfg:        cfg,
		log:        log,
	}
}

// HTTPHandler returns the routes served by cmd/webhook-server.
func (c *Components) HTTPHandler() http.Handler {
	server := httpwebhook.NewServer(httpwebhook.NewConfig(c.cfg), c.Dispatcher, c.Weather, &httpLoggerAdapter{c.log})
	return server.Routes()
}

// LambdaHandler returns the API Gateway handler served by cmd/webhook-lambda.
func (c *Components) LambdaHandler() *lambdawebhook.Handler {
	return lambdawebhook.NewHandler(c.Dispatcher, &lambdaLoggerAdapter{c.log})
}

// Logger adapters for components that have their own Logger interfaces
type resolverLoggerAdapter struct {
	logger.Logger
}

func (a *resolverLoggerAdapter) With(fields map[string]interface{}) resolvelocation.Logger {
	return &resolverLoggerAdapter{a.Logger.With(fields)}
}

type weatherLoggerAdapter struct {
	logger.Logger
}

func (a *weatherLoggerAdapter) With(fields map[string]interface{}) fetchcurrent.Logger {
	return &weatherLoggerAdapter{a.Logger.With(fields)}
}

type dispatcherLoggerAdapter struct {
	logger.Logger
}

func (a *dispatcherLoggerAdapter) With(fields map[string]interface{}) dispatchintent.Logger {
	return &dispatcherLoggerAdapter{a.Logger.With(fields)}
}

type httpLoggerAdapter struct {
	logger.Logger
}

func (a *httpLoggerAdapter) With(fields map[string]interface{}) httpwebhook.Logger {
	return &httpLoggerAdapter{a.Logger.With(fields)}
}

type lambdaLoggerAdapter struct {
	logger.Logger
}

func (a *lambdaLoggerAdapter) With(fields map[string]interface{}) lambdawebhook.Logger {
	return &lambdaLoggerAdapter{a.Logger.With(fields)}
}
