package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/std/v1/logger"
)

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It wraps the OpenTelemetry TracerProvider and provides convenient methods for
// creating spans and propagating trace context across service boundaries.
type Tracer struct {
	tracer *trace.TracerProvider
	named  oteltrace.Tracer
	logger logger.Logger
}

// NewClient creates and initializes a new Tracer instance with OpenTelemetry.
// If cfg.EnableExport is set, it configures an OTLP/HTTP batch exporter that
// sends spans to cfg.Endpoint. If the exporter fails to initialize, it logs an
// error and returns nil.
//
// Example:
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "schema-registry",
//		AppEnv:       "production",
//		EnableExport: true,
//		Endpoint:     "otel-collector:4318",
//	}, log)
//	ctx, span := tracerClient.StartSpan(context.Background(), "register-schema")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}

		client := otlptracehttp.NewClient(opts...)
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Error("cannot initiate tracer exporter", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 {
		ratio = 1.0
	}
	options = append(options,
		trace.WithSampler(trace.TraceIDRatioBased(ratio)),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.AppEnv),
			attribute.String("environment", cfg.AppEnv),
		)),
	)

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{
		tracer: tp,
		named:  tp.Tracer(cfg.ServiceName),
		logger: log,
	}
}

// StartSpan starts a new span named name as a child of any span already
// present in ctx, and returns the derived context and the span.
func (t *Tracer) StartSpan(ctx context.Context, name string, opts ...oteltrace.SpanStartOption) (context.Context, oteltrace.Span) {
	return t.named.Start(ctx, name, opts...)
}
