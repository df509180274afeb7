package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"counterlab/internal/counter"
)

// Attribute keys set on intent spans.
const (
	AttrCounter = attribute.Key("counterlab.counter")
	AttrIntent  = attribute.Key("counterlab.intent")
	AttrFrom    = attribute.Key("counterlab.count.from")
	AttrTo      = attribute.Key("counterlab.count.to")
	AttrStep    = attribute.Key("counterlab.step")
	AttrEntry   = attribute.Key("counterlab.history.entry")
)

// CounterHook returns a hook emitting one span per applied intent.
// Intents are synchronous, so each span starts and ends inside the hook.
func CounterHook(tracer oteltrace.Tracer, name string) counter.Hook {
	return func(ch counter.Change) {
		attrs := []attribute.KeyValue{
			AttrCounter.String(name),
			AttrIntent.String(ch.Intent.String()),
			AttrFrom.Int(ch.From),
			AttrTo.Int(ch.To),
			AttrStep.Int(ch.Step),
		}
		if ch.Entry != "" {
			attrs = append(attrs, AttrEntry.String(ch.Entry))
		}
		_, span := tracer.Start(context.Background(), "counter."+ch.Intent.String(),
			oteltrace.WithAttributes(attrs...))
		span.End()
	}
}
