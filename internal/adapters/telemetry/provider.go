// Package telemetry records pipeline steps as OpenTelemetry spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
)

// InstrumentationName names the tracer that records pipeline steps.
const InstrumentationName = "go.trai.ch/cross"

// Span attribute keys carrying the step.
const (
	PhaseKey  = attribute.Key("cross.phase")
	TripleKey = attribute.Key("cross.triple")
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a new OTelTracer backed by provider.
func NewOTelTracer(provider trace.TracerProvider) *OTelTracer {
	return &OTelTracer{
		tracer: provider.Tracer(InstrumentationName),
	}
}

// NewProvider returns a synchronous tracer provider that forwards every span to reporter.
// Callers must Shutdown the provider when the run is over.
func NewProvider(reporter ports.Reporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewBridge(reporter)),
	)
}

// Start creates a new span for step.
func (t *OTelTracer) Start(ctx context.Context, step domain.Step) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, SpanName(step),
		trace.WithAttributes(
			PhaseKey.String(string(step.Phase)),
			TripleKey.String(step.Triple.String()),
		),
	)
	return ctx, &OTelSpan{span: span}
}

// SpanName renders the span name of step.
func SpanName(step domain.Step) string {
	if step.Triple == "" {
		return string(step.Phase)
	}
	return string(step.Phase) + " " + step.Triple.String()
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}
