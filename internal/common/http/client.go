// internal/common/http/client.go
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-fulfillment/internal/common/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxBodyBytes caps how much of a provider response is read into memory.
const maxBodyBytes = 1 << 20

// Response is a fully read upstream reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client performs instrumented outbound GET calls to third-party providers.
type Client struct {
	httpClient *http.Client
	tracer     trace.Tracer
}

type Option func(*Client)

// WithTracer overrides the global otel tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// NewClient builds a client. A zero timeout leaves requests unbounded apart
// from the caller's context.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("weather-fulfillment/http"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues GET endpoint?query and returns the status and body. A non-nil
// error means no response was received; HTTP error statuses are returned as
// a Response for the caller to classify.
func (c *Client) Get(ctx context.Context, provider, endpoint string, query url.Values) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "GET "+provider, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("provider", provider),
		attribute.String("http.endpoint", endpoint),
	)

	start := time.Now()
	status := 0
	defer func() {
		metrics.UpstreamCalls.WithLabelValues(provider, metrics.StatusClass(status)).Inc()
		metrics.UpstreamDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}()

	target := endpoint
	if len(query) > 0 {
		target = endpoint + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, err
	}
	defer resp.Body.Close()

	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", status))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, fmt.Errorf("read body: %w", err)
	}

	if status >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(status))
	}

	return &Response{StatusCode: status, Body: body}, nil
}
