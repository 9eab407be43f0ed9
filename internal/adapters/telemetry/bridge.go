package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to bridge step spans to a Reporter.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a new Bridge.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{
		reporter: reporter,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	step, ok := stepFromAttributes(s.Attributes())
	if !ok {
		return
	}

	b.reporter.OnStepStart(sc.SpanID().String(), step, s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if _, ok := stepFromAttributes(s.Attributes()); !ok {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "step failed"
		}
		err = errors.New(desc)
	}

	b.reporter.OnStepComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func stepFromAttributes(attrs []attribute.KeyValue) (domain.Step, bool) {
	var step domain.Step
	found := false
	for _, kv := range attrs {
		switch kv.Key {
		case PhaseKey:
			step.Phase = domain.Phase(kv.Value.AsString())
			found = true
		case TripleKey:
			step.Triple = domain.Triple(kv.Value.AsString())
		}
	}
	return step, found
}
