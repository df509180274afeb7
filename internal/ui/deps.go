package ui

import (
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"counterlab/internal/counter"
	"counterlab/internal/logging"
	"counterlab/internal/title"
	"counterlab/internal/trace"
)

// Deps are the collaborators every counter view shares.
type Deps struct {
	Title        title.Sink // where "Count: N" is shown; nil discards
	DefaultTitle string     // restored when a counter is torn down
	Logger       *zap.Logger
	Tracer       oteltrace.Tracer // nil disables intent spans

	// Window, when set, is the part of Title written through the Bubble Tea
	// renderer. The app flushes it after every update and detaches it on Close.
	Window *ProgramTitle
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// counterOptions wires the diagnostic hooks for the named counter.
func (d Deps) counterOptions(name string) []counter.Option {
	opts := []counter.Option{counter.WithHook(logging.CounterHook(d.logger(), name))}
	if d.Tracer != nil {
		opts = append(opts, counter.WithHook(trace.CounterHook(d.Tracer, name)))
	}
	return opts
}

// lifecycle logs a mount/unmount event for the named counter.
func (d Deps) lifecycle(name, event string) {
	d.logger().Info(event, zap.String("counter", name))
}

// acquireTitle takes the title for a counter showing count. A failing sink
// is logged; the lease is still usable.
func (d Deps) acquireTitle(name string, count int) *title.Lease {
	lease, err := title.Acquire(d.Title, title.Label(count), d.DefaultTitle)
	if err != nil {
		d.logger().Warn("title unavailable", zap.String("counter", name), zap.Error(err))
	}
	return lease
}

func (d Deps) updateTitle(name string, lease *title.Lease, count int) {
	if lease == nil {
		return
	}
	if err := lease.Update(title.Label(count)); err != nil {
		d.logger().Warn("title update failed", zap.String("counter", name), zap.Error(err))
	}
}

func (d Deps) releaseTitle(name string, lease *title.Lease) {
	if lease == nil {
		return
	}
	if err := lease.Release(); err != nil {
		d.logger().Warn("title release failed", zap.String("counter", name), zap.Error(err))
	}
}
