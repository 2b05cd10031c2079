// internal/transport/httpwebhook/server.go
package httpwebhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "weather-fulfillment/internal/common/errors"
	"weather-fulfillment/internal/models"
	"weather-fulfillment/internal/transport/dialogflow"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ComponentName   = "httpwebhook"
	RequestIDHeader = "X-Request-ID"

	missingAPIKeyError = "API key not found in environment variables"
	missingCoordsError = "Missing 'lat' or 'lon' query parameters"
)

type Logger interface {
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req models.IntentRequest) models.FulfillmentResponse
}

type WeatherLookup interface {
	FetchRaw(ctx context.Context, lat, lon string) (json.RawMessage, error)
}

// Server adapts HTTP requests to the dispatcher and serves the operational
// endpoints.
type Server struct {
	config     *Config
	dispatcher Dispatcher
	weather    WeatherLookup
	logger     Logger
}

func NewServer(cfg *Config, dispatcher Dispatcher, weather WeatherLookup, log Logger) *Server {
	return &Server{
		config:     cfg,
		dispatcher: dispatcher,
		weather:    weather,
		logger: log.With(map[string]interface{}{
			"component": ComponentName,
		}),
	}
}

// Routes returns the full handler tree with middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", s.HandleWebhook)
	mux.HandleFunc("GET /current-weather", s.HandleCurrentWeather)
	mux.HandleFunc("GET /health", s.handleStatus("healthy"))
	mux.HandleFunc("GET /ready", s.handleStatus("ready"))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withRequestID(s.withRecover(s.withInFlight(mux)))
}

// HandleWebhook decodes a fulfillment request, dispatches it and writes the
// response in the format the dispatcher chose.
func (s *Server) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBodyBytes()))
	if err != nil {
		s.logger.Error("failed to read request body", map[string]interface{}{
			"requestId": requestIDFrom(r.Context()),
			"error":     err,
		})
		writeFulfillment(w, models.Failure(dispatchRequestError, http.StatusInternalServerError))
		return
	}

	req := dialogflow.Decode(body, requestIDFrom(r.Context()))
	writeFulfillment(w, s.dispatcher.Dispatch(r.Context(), req))
}

// HandleCurrentWeather returns the raw provider body for ?lat=&lon=.
func (s *Server) HandleCurrentWeather(w http.ResponseWriter, r *http.Request) {
	if !s.config.APIKeyConfigured {
		writeJSON(w, http.StatusInternalServerError, lookupResponse{Success: false, Error: missingAPIKeyError})
		return
	}

	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		writeJSON(w, http.StatusBadRequest, lookupResponse{Success: false, Error: missingCoordsError})
		return
	}

	data, err := s.weather.FetchRaw(r.Context(), lat, lon)
	if err != nil {
		stdErr := apperrors.AsStandardError(err)
		status := http.StatusInternalServerError
		if stdErr.UpstreamStatus != 0 {
			status = stdErr.UpstreamStatus
		}
		s.logger.Error("current weather lookup failed", map[string]interface{}{
			"requestId": requestIDFrom(r.Context()),
			"errorCode": string(stdErr.Code),
			"status":    status,
		})
		writeJSON(w, status, lookupResponse{Success: false, Error: stdErr.Message})
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{Success: true, Data: data})
}

func (s *Server) handleStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":           status,
			"apiKeyConfigured": s.config.APIKeyConfigured,
			"time":             time.Now().Format(time.RFC3339),
		})
	}
}

func (s *Server) maxBodyBytes() int64 {
	if s.config.MaxBodyBytes <= 0 {
		return 1 << 20
	}
	return s.config.MaxBodyBytes
}
