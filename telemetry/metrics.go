package telemetry

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

const serviceName = "outfit-recommender"

// ShutdownFunc flushes and stops the meter provider
type ShutdownFunc func(ctx context.Context) error

// Enabled reports whether an OTLP endpoint is configured
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT") != ""
}

// InitMeterProvider installs a global meter provider exporting over OTLP/HTTP.
// Without an OTLP endpoint the global no-op provider is kept and the returned
// shutdown does nothing.
func InitMeterProvider(ctx context.Context) (ShutdownFunc, error) {
	if !Enabled() {
		log.Printf("⚠️  OTEL_EXPORTER_OTLP_ENDPOINT not set, metrics are not exported")
		return func(context.Context) error { return nil }, nil
	}

	res, err := newAppResource(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := newMeterProvider(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}
	otel.SetMeterProvider(provider)

	log.Printf("✓ OTLP metric exporter initialized")
	return provider.Shutdown, nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
	), nil
}

func newAppResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
