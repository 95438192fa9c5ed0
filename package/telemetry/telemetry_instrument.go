package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	CommandCounter metric.Int64Counter
	HeaderCounter  metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	commandCounter, err := meter.Int64Counter(
		"sdkgen.extension.commands",
		metric.WithDescription("Number of emitted extension commands"),
	)
	if err != nil {
		return nil, err
	}

	headerCounter, err := meter.Int64Counter(
		"sdkgen.docgen.headers",
		metric.WithDescription("Number of documented header files"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		CommandCounter: commandCounter,
		HeaderCounter:  headerCounter,
	}, nil
}

func (r *Instrument) CommandRecord(ctx context.Context, count int64, kind string) {
	r.CommandCounter.Add(
		ctx,
		count,
		metric.WithAttributes(
			attribute.String("command.kind", kind),
		),
	)
}

func (r *Instrument) HeaderRecord(ctx context.Context, count int64, folder string) {
	r.HeaderCounter.Add(
		ctx,
		count,
		metric.WithAttributes(
			attribute.String("docgen.folder", folder),
		),
	)
}
