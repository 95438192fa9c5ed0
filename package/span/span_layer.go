package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/sdkgen"
)

type Layer struct {
	Tracer trace.Tracer `json:"-"`
	Name   string       `json:"name,omitempty"`
	Type   string       `json:"type,omitempty"`
	Caller *Caller      `json:"caller,omitempty"`
}

func NewLayer(tracer trace.Tracer, name string, typ string) *Layer {
	caller := NewCaller()

	return &Layer{
		Tracer: tracer,
		Name:   name,
		Type:   typ,
		Caller: caller,
	}
}

func (r *Layer) With(ctx context.Context) (sdkgen.Span, context.Context) {
	parent := FromContext(ctx)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	var tracingSpan trace.Span
	if r.Tracer != nil {
		ctx, tracingSpan = r.Tracer.Start(ctx, name)
		tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))
	}

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     r,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if parent != nil {
		s.Path = append(append([]*string{}, parent.Path...), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	ctx = context.WithValue(ctx, ContextKeySpan, s)
	return &Wrapper{Span: s, ctx: ctx}, ctx
}
