package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.scnd.dev/open/sdkgen"
	"go.scnd.dev/open/sdkgen/package/span"
)

type Config interface {
	GetTelemetryUrl() *string
	GetTelemetryOrganization() *string
}

type Telemetry struct {
	Config     Config
	Meter      metric.Meter
	Tracer     trace.Tracer
	Instrument *Instrument
	shutdowns  []func(context.Context) error
}

func New(config Config) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Config:     config,
		Meter:      nil,
		Tracer:     nil,
		Instrument: nil,
		shutdowns:  nil,
	}

	// * without collector, fall back to no-op providers
	if config == nil || config.GetTelemetryUrl() == nil || *config.GetTelemetryUrl() == "" {
		telemetry.Meter = metricnoop.NewMeterProvider().Meter(sdkgen.Name)
		telemetry.Tracer = tracenoop.NewTracerProvider().Tracer(sdkgen.Name)
		telemetry.Instrument, err = NewInstrument(telemetry.Meter)
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize instrument", err)
		}
		return telemetry, nil
	}

	// * construct resource
	attributes := []attribute.KeyValue{
		semconv.ServiceName(sdkgen.Name),
		semconv.ServiceVersion(sdkgen.Version),
		semconv.ServiceNamespace(sdkgen.Namespace),
	}
	res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize resource", err)
	}

	// * construct meter
	telemetry.Meter, err = NewMeter(telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

func NewMeter(telemetry *Telemetry, res *resource.Resource) (metric.Meter, error) {
	// * construct exporter
	exporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(*telemetry.Config.GetTelemetryUrl()),
		otlpmetricgrpc.WithHeaders(headers(telemetry.Config)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize metric exporter", err)
	}

	// * construct provider
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)),
		sdkmetric.WithResource(res),
	)
	telemetry.shutdowns = append(telemetry.shutdowns, provider.Shutdown)

	return provider.Meter(sdkgen.Name + "-meter"), nil
}

func NewTracer(telemetry *Telemetry, res *resource.Resource) (trace.Tracer, error) {
	// * construct exporter
	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(*telemetry.Config.GetTelemetryUrl()),
		otlptracegrpc.WithHeaders(headers(telemetry.Config)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize trace exporter", err)
	}

	// * construct provider
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	telemetry.shutdowns = append(telemetry.shutdowns, provider.Shutdown)

	return provider.Tracer(sdkgen.Name + "-tracer"), nil
}

// Shutdown flushes exporters. A one-shot run calls it once before exiting.
func (r *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, shutdown := range r.shutdowns {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	r.shutdowns = nil
	return errors.Join(errs...)
}

func headers(config Config) map[string]string {
	if config.GetTelemetryOrganization() == nil || *config.GetTelemetryOrganization() == "" {
		return map[string]string{}
	}
	return map[string]string{
		"X-Scope-OrgID": *config.GetTelemetryOrganization(),
	}
}
