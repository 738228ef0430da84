package tracing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

func NewExporter(ctx context.Context, endpointURL string) (trace.SpanExporter, error) {
	return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(endpointURL), otlptracegrpc.WithInsecure())
}

func NewTraceProvider(exp trace.SpanExporter, serviceName string) (*trace.TracerProvider, error) {
	// Ensure default SDK resources and the required service name are set.
	r, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(r),
	), nil
}

// Enable wires an OTLP/gRPC exporter into the global tracer provider for the
// duration of the process and returns a cleanup func to flush it on exit.
func Enable(logger *slog.Logger, serviceName, dialAddr string) (func(), error) {
	if dialAddr == "" {
		return nil, errors.New("tracing enabled, but dial address empty")
	}

	ctx := context.Background()

	exp, err := NewExporter(ctx, dialAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp, err := NewTraceProvider(exp, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace provider: %w", err)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(tp)

	cleanup := func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.String("err", err.Error()))
		}
	}

	return cleanup, nil
}
