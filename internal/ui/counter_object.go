package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/counter"
	"counterlab/internal/title"
)

// ObjectCounterName identifies the object-style counter in focus order and logs.
const ObjectCounterName = "object"

var objectFeatures = []string{
	"State lives on a struct built by a constructor",
	"Intents are methods on the view",
	"Explicit Mount, didUpdate and Unmount lifecycle methods",
	"Every mutation goes through setState",
	"State read through the receiver",
}

// ObjectCounterView is the object-style adapter: the counter and its title
// lease are fields, and each lifecycle step is a method.
type ObjectCounterView struct {
	deps    Deps
	state   *counter.Counter
	lease   *title.Lease
	step    stepField
	focused bool
	width   int
}

// Ensure ObjectCounterView implements CounterView.
var _ CounterView = (*ObjectCounterView)(nil)

// NewObjectCounterView creates an unmounted object-style counter.
func NewObjectCounterView(deps Deps) *ObjectCounterView {
	return &ObjectCounterView{deps: deps, step: newStepField()}
}

// Name implements CounterView.
func (v *ObjectCounterView) Name() string { return ObjectCounterName }

// Mount initializes state and takes the title, once per mount.
func (v *ObjectCounterView) Mount() tea.Cmd {
	if v.state != nil {
		return nil
	}
	v.state = counter.New(v.deps.counterOptions(ObjectCounterName)...)
	v.step = newStepField()
	v.lease = v.deps.acquireTitle(ObjectCounterName, v.state.Count())
	v.deps.lifecycle(ObjectCounterName, "component mounted")
	return nil
}

// didUpdate runs after every state change and follows the count in the title.
func (v *ObjectCounterView) didUpdate(prev counter.Snapshot) {
	now := v.state.Snapshot()
	v.step.Sync(now.Step)
	if prev.Count != now.Count {
		v.deps.updateTitle(ObjectCounterName, v.lease, now.Count)
	}
}

// Unmount restores the default title and drops the state.
func (v *ObjectCounterView) Unmount() {
	if v.state == nil {
		return
	}
	v.deps.lifecycle(ObjectCounterName, "component will unmount")
	v.deps.releaseTitle(ObjectCounterName, v.lease)
	v.state = nil
	v.lease = nil
	v.step.End(counter.DefaultStep)
}

// Mounted implements CounterView.
func (v *ObjectCounterView) Mounted() bool { return v.state != nil }

// Snapshot implements CounterView. An unmounted counter reports the initial state.
func (v *ObjectCounterView) Snapshot() counter.Snapshot {
	if v.state == nil {
		return counter.New().Snapshot()
	}
	return v.state.Snapshot()
}

// Editing implements CounterView.
func (v *ObjectCounterView) Editing() bool { return v.step.Editing() }

// SetFocused implements CounterView.
func (v *ObjectCounterView) SetFocused(f bool) { v.focused = f }

// SetWidth implements CounterView.
func (v *ObjectCounterView) SetWidth(w int) { v.width = w }

// setState applies one mutation and runs didUpdate.
func (v *ObjectCounterView) setState(mutate func() counter.Snapshot) {
	prev := v.state.Snapshot()
	mutate()
	v.didUpdate(prev)
}

// dispatch sends one intent to the counter through setState.
func (v *ObjectCounterView) dispatch(in counter.Intent, arg string) {
	v.setState(func() counter.Snapshot { return v.state.Apply(in, arg) })
}

// Increment adds the step.
func (v *ObjectCounterView) Increment() { v.dispatch(counter.IntentIncrement, "") }

// Decrement subtracts the step.
func (v *ObjectCounterView) Decrement() { v.dispatch(counter.IntentDecrement, "") }

// Reset returns the count to zero.
func (v *ObjectCounterView) Reset() { v.dispatch(counter.IntentReset, "") }

// HandleStepChange stores raw as the step.
func (v *ObjectCounterView) HandleStepChange(raw string) {
	v.dispatch(counter.IntentSetStep, raw)
}

// Init implements View.
func (v *ObjectCounterView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ObjectCounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	if v.state == nil {
		return v, nil
	}
	if v.step.Editing() {
		raw, changed, done, cmd := v.step.Update(msg)
		if changed {
			v.HandleStepChange(raw)
		}
		if done {
			v.step.End(v.state.Step())
		}
		return v, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(km, counterKeys.Increment):
		v.Increment()
	case key.Matches(km, counterKeys.Decrement):
		v.Decrement()
	case key.Matches(km, counterKeys.Reset):
		v.Reset()
	case key.Matches(km, counterKeys.StepUp):
		v.HandleStepChange(strconv.Itoa(nudgeStep(v.state.Step(), 1)))
	case key.Matches(km, counterKeys.StepDown):
		v.HandleStepChange(strconv.Itoa(nudgeStep(v.state.Step(), -1)))
	case key.Matches(km, counterKeys.EditStep):
		return v, v.step.Begin(v.state.Step())
	}
	return v, nil
}

// View implements View.
func (v *ObjectCounterView) View() string {
	return renderCounter(counterProps{
		Heading:  "Object-Style Counter",
		Snapshot: v.Snapshot(),
		Step:     v.step.View(),
		Features: objectFeatures,
		Focused:  v.focused,
		Mounted:  v.Mounted(),
		Width:    v.width,
	})
}
