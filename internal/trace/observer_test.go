package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"counterlab/internal/config"
	"counterlab/internal/counter"
)

func newRecordedProvider() (*Provider, *tracetest.SpanRecorder) {
	sr := tracetest.NewSpanRecorder()
	return NewProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))), sr
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestCounterHook_SpanPerIntent(t *testing.T) {
	p, sr := newRecordedProvider()
	c := counter.New(counter.WithHook(CounterHook(p.Tracer(), "hook")))

	c.SetStep("2")
	c.Increment()
	c.Reset()

	spans := sr.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "counter.set_step", spans[0].Name())
	assert.Equal(t, "counter.increment", spans[1].Name())
	assert.Equal(t, "counter.reset", spans[2].Name())

	inc := attrMap(spans[1].Attributes())
	assert.Equal(t, "hook", inc[AttrCounter].AsString())
	assert.Equal(t, int64(0), inc[AttrFrom].AsInt64())
	assert.Equal(t, int64(2), inc[AttrTo].AsInt64())
	assert.Equal(t, int64(2), inc[AttrStep].AsInt64())
	assert.Equal(t, "Incremented by 2 to 2", inc[AttrEntry].AsString())

	_, hasEntry := attrMap(spans[0].Attributes())[AttrEntry]
	assert.False(t, hasEntry, "set_step writes no history entry")
}

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), config.TraceConfig{ServiceName: "x"})
	require.NoError(t, err)
	require.NotNil(t, p.Tracer())

	_, span := p.Tracer().Start(context.Background(), "ignored")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	for _, ep := range []string{"localhost:4318", "http://localhost:4318"} {
		p, err := Setup(context.Background(), config.TraceConfig{
			Endpoint:    ep,
			ServiceName: "counterlab-test",
			Insecure:    true,
		})
		require.NoError(t, err, ep)
		require.NotNil(t, p.sdk)

		_, span := p.Tracer().Start(context.Background(), "probe")
		assert.True(t, span.SpanContext().IsValid())
		span.End()
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
}
