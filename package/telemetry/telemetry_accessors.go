package telemetry

import (
	"go.scnd.dev/open/sdkgen/package/span"
)

func (r *Telemetry) Layer(name string, typ string) *span.Layer {
	return span.NewLayer(r.Tracer, name, typ)
}
