package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

// Observability owns the process-wide otel meter and tracer providers.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer
	dispatchCount  otelmetric.Int64Counter
	dispatchTime   otelmetric.Float64Histogram
}

// New registers global meter and tracer providers. Metrics are exported
// through the prometheus default registry and served on /metrics.
func New(serviceName string, sampleRatio float64, log Logger) *Observability {
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	otel.SetTracerProvider(tracerProvider)

	o := &Observability{
		tracerProvider: tracerProvider,
		tracer:         tracerProvider.Tracer(serviceName),
	}

	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("failed to create prometheus exporter", map[string]interface{}{"error": err.Error()})
		return o
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	dispatchCount, _ := meter.Int64Counter(
		"fulfillment.dispatched",
		otelmetric.WithDescription("Number of webhook requests dispatched"),
	)

	dispatchTime, _ := meter.Float64Histogram(
		"fulfillment.duration",
		otelmetric.WithDescription("Webhook dispatch duration"),
		otelmetric.WithUnit("ms"),
	)

	o.meterProvider = provider
	o.meter = meter
	o.dispatchCount = dispatchCount
	o.dispatchTime = dispatchTime
	return o
}

// Tracer returns the service tracer.
func (o *Observability) Tracer() trace.Tracer {
	if o == nil || o.tracer == nil {
		return otel.Tracer("weather-fulfillment")
	}
	return o.tracer
}

// RecordDispatch records one dispatched request and its duration.
func (o *Observability) RecordDispatch(ctx context.Context, intent, outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("intent", intent),
		attribute.String("outcome", outcome),
	)
	if o.dispatchCount != nil {
		o.dispatchCount.Add(ctx, 1, attrs)
	}
	if o.dispatchTime != nil {
		o.dispatchTime.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
	if o.tracerProvider != nil {
		_ = o.tracerProvider.Shutdown(ctx)
	}
}
