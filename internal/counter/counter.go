// Package counter implements the counter state machine shared by both
// presentation styles.
//
// A Counter owns the current count, the count before the last mutation, the
// step applied by increment/decrement, and a short log of recent operations.
// Every operation is synchronous and total; the only input that can be wrong is
// step text, which silently falls back to DefaultStep.
package counter

import "fmt"

const (
	// HistoryLimit is the number of history entries kept; older entries are dropped first.
	HistoryLimit = 5
	// DefaultStep is used initially and whenever step text is invalid.
	DefaultStep = 1
)

// Change describes one applied intent. It is delivered to hooks after the
// state has been updated.
type Change struct {
	Intent Intent
	From   int // count before the intent
	To     int // count after the intent
	Step   int // step after the intent
	Entry  string
}

// CountChanged reports whether the intent moved the count.
func (c Change) CountChanged() bool {
	return c.From != c.To
}

// Hook observes applied intents. Hooks are diagnostics only.
type Hook func(Change)

// Option configures a Counter.
type Option func(*Counter)

// WithHook registers a hook called after every intent.
func WithHook(h Hook) Option {
	return func(c *Counter) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}

// Counter is a single widget's state. It is not safe for concurrent use; each
// widget owns its own Counter and drives it from one goroutine.
type Counter struct {
	count       int
	previous    int
	hasPrevious bool
	step        int
	history     []string
	hooks       []Hook
}

// New returns a counter at zero with step 1 and no history.
func New(opts ...Option) *Counter {
	c := &Counter{
		step:    DefaultStep,
		history: make([]string, 0, HistoryLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Increment adds step to the count.
func (c *Counter) Increment() Snapshot {
	next := c.count + c.step
	return c.move(IntentIncrement, next, fmt.Sprintf("Incremented by %d to %d", c.step, next))
}

// Decrement subtracts step from the count.
func (c *Counter) Decrement() Snapshot {
	next := c.count - c.step
	return c.move(IntentDecrement, next, fmt.Sprintf("Decremented by %d to %d", c.step, next))
}

// Reset sets the count to zero. Step is kept.
func (c *Counter) Reset() Snapshot {
	return c.move(IntentReset, 0, "Reset to 0")
}

// SetStep parses raw and stores it as the step. See ParseStep.
// Count, previous count and history are left alone.
func (c *Counter) SetStep(raw string) Snapshot {
	c.step = ParseStep(raw)
	c.notify(Change{Intent: IntentSetStep, From: c.count, To: c.count, Step: c.step})
	return c.Snapshot()
}

// Apply dispatches an intent. arg is only read by IntentSetStep.
// Unknown intents leave the state untouched.
func (c *Counter) Apply(in Intent, arg string) Snapshot {
	switch in {
	case IntentIncrement:
		return c.Increment()
	case IntentDecrement:
		return c.Decrement()
	case IntentReset:
		return c.Reset()
	case IntentSetStep:
		return c.SetStep(arg)
	}
	return c.Snapshot()
}

// Step returns the current step.
func (c *Counter) Step() int {
	return c.step
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}

// Snapshot returns a copy of the current state.
func (c *Counter) Snapshot() Snapshot {
	h := make([]string, len(c.history))
	copy(h, c.history)
	return Snapshot{
		Count:       c.count,
		previous:    c.previous,
		hasPrevious: c.hasPrevious,
		Step:        c.step,
		History:     h,
	}
}

func (c *Counter) move(in Intent, next int, entry string) Snapshot {
	from := c.count
	c.previous = from
	c.hasPrevious = true
	c.count = next
	c.record(entry)
	c.notify(Change{Intent: in, From: from, To: next, Step: c.step, Entry: entry})
	return c.Snapshot()
}

// record appends entry and drops the oldest entries beyond HistoryLimit.
func (c *Counter) record(entry string) {
	c.history = append(c.history, entry)
	if over := len(c.history) - HistoryLimit; over > 0 {
		c.history = append(c.history[:0], c.history[over:]...)
	}
}

func (c *Counter) notify(ch Change) {
	for _, h := range c.hooks {
		h(ch)
	}
}
