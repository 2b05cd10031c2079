// internal/transport/httpwebhook/middleware.go
package httpwebhook

import (
	"context"
	"fmt"
	"net/http"

	"weather-fulfillment/internal/common/metrics"
	"weather-fulfillment/internal/models"

	"github.com/google/uuid"
)

type requestIDKey struct{}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID reuses an inbound X-Request-ID or assigns a new one, and
// echoes it on the response.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// withRecover turns a panic into the generic 500 text response.
func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic while serving request", map[string]interface{}{
					"requestId": requestIDFrom(r.Context()),
					"path":      r.URL.Path,
					"panic":     fmt.Sprintf("%v", rec),
				})
				writeFulfillment(w, models.Failure(dispatchRequestError, http.StatusInternalServerError))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withInFlight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsInFlight.Inc()
		defer metrics.RequestsInFlight.Dec()
		next.ServeHTTP(w, r)
	})
}
