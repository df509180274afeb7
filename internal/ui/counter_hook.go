package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/counter"
)

// HookCounterName identifies the hook-style counter in focus order and logs.
const HookCounterName = "hook"

var hookFeatures = []string{
	"useCounter returns state plus setter closures",
	"No receiver juggling; handlers close over setters",
	"useTitleEffect runs after count changes",
	"The effect returns its own cleanup",
	"Key handlers are a table, not a method set",
	"Less boilerplate per intent",
}

// counterState is what useCounter hands back: a getter and one setter per intent.
type counterState struct {
	snapshot  func() counter.Snapshot
	increment func()
	decrement func()
	reset     func()
	setStep   func(raw string)
}

// useCounter creates a counter and exposes it through closures only.
func useCounter(opts ...counter.Option) counterState {
	c := counter.New(opts...)
	dispatch := func(in counter.Intent) func() {
		return func() { c.Apply(in, "") }
	}
	return counterState{
		snapshot:  c.Snapshot,
		increment: dispatch(counter.IntentIncrement),
		decrement: dispatch(counter.IntentDecrement),
		reset:     dispatch(counter.IntentReset),
		setStep:   func(raw string) { c.Apply(counter.IntentSetStep, raw) },
	}
}

// effect runs with the current count and returns the cleanup for that run.
type effect func(count int) (cleanup func())

// useTitleEffect shows the count in the title. Each run takes a fresh lease
// and its cleanup releases it, so a count change restores the default title
// and then sets the new one.
func useTitleEffect(deps Deps) effect {
	return func(count int) func() {
		lease := deps.acquireTitle(HookCounterName, count)
		deps.lifecycle(HookCounterName, "component mounted/updated")
		return func() {
			deps.lifecycle(HookCounterName, "cleanup running")
			deps.releaseTitle(HookCounterName, lease)
		}
	}
}

// keyHandler pairs a binding with the closure it triggers.
type keyHandler struct {
	binding key.Binding
	run     func() tea.Cmd
}

// HookCounterView is the hook-style adapter: everything it does is built from
// closures when it mounts.
type HookCounterView struct {
	deps     Deps
	mounted  bool
	state    counterState
	handlers []keyHandler
	onChange func()    // re-runs the effect when the count moved
	cleanup  func()    // cleanup of the last effect run
	lastSeen int       // count the effect last ran with
	step     stepField // shared step input
	focused  bool
	width    int
}

// Ensure HookCounterView implements CounterView.
var _ CounterView = (*HookCounterView)(nil)

// NewHookCounterView creates an unmounted hook-style counter.
func NewHookCounterView(deps Deps) *HookCounterView {
	return &HookCounterView{deps: deps, step: newStepField()}
}

// Name implements CounterView.
func (v *HookCounterView) Name() string { return HookCounterName }

// Mount implements CounterView.
func (v *HookCounterView) Mount() tea.Cmd {
	if v.mounted {
		return nil
	}
	v.mounted = true
	v.step = newStepField()
	state := useCounter(v.deps.counterOptions(HookCounterName)...)
	titleEffect := useTitleEffect(v.deps)

	v.state = state
	v.lastSeen = state.snapshot().Count
	v.cleanup = titleEffect(v.lastSeen)
	v.onChange = func() {
		s := state.snapshot()
		v.step.Sync(s.Step)
		if s.Count == v.lastSeen {
			return
		}
		v.cleanup()
		v.lastSeen = s.Count
		v.cleanup = titleEffect(s.Count)
	}

	do := func(f func()) func() tea.Cmd {
		return func() tea.Cmd {
			f()
			v.onChange()
			return nil
		}
	}
	nudge := func(delta int) func() tea.Cmd {
		return do(func() { state.setStep(strconv.Itoa(nudgeStep(state.snapshot().Step, delta))) })
	}
	v.handlers = []keyHandler{
		{counterKeys.Increment, do(state.increment)},
		{counterKeys.Decrement, do(state.decrement)},
		{counterKeys.Reset, do(state.reset)},
		{counterKeys.StepUp, nudge(1)},
		{counterKeys.StepDown, nudge(-1)},
		{counterKeys.EditStep, func() tea.Cmd { return v.step.Begin(state.snapshot().Step) }},
	}
	return nil
}

// Unmount runs the pending effect cleanup and forgets every closure.
func (v *HookCounterView) Unmount() {
	if !v.mounted {
		return
	}
	if v.cleanup != nil {
		v.cleanup()
	}
	v.mounted = false
	v.state = counterState{}
	v.handlers = nil
	v.onChange = nil
	v.cleanup = nil
	v.step.End(counter.DefaultStep)
}

// Mounted implements CounterView.
func (v *HookCounterView) Mounted() bool { return v.mounted }

// Snapshot implements CounterView. An unmounted counter reports the initial state.
func (v *HookCounterView) Snapshot() counter.Snapshot {
	if !v.mounted {
		return counter.New().Snapshot()
	}
	return v.state.snapshot()
}

// Editing implements CounterView.
func (v *HookCounterView) Editing() bool { return v.step.Editing() }

// SetFocused implements CounterView.
func (v *HookCounterView) SetFocused(f bool) { v.focused = f }

// SetWidth implements CounterView.
func (v *HookCounterView) SetWidth(w int) { v.width = w }

// Init implements View.
func (v *HookCounterView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HookCounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	if !v.mounted {
		return v, nil
	}
	if v.step.Editing() {
		raw, changed, done, cmd := v.step.Update(msg)
		if changed {
			v.state.setStep(raw)
			v.onChange()
		}
		if done {
			v.step.End(v.state.snapshot().Step)
		}
		return v, cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		for _, h := range v.handlers {
			if key.Matches(km, h.binding) {
				return v, h.run()
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *HookCounterView) View() string {
	return renderCounter(counterProps{
		Heading:  "Hook-Style Counter",
		Snapshot: v.Snapshot(),
		Step:     v.step.View(),
		Features: hookFeatures,
		Focused:  v.focused,
		Mounted:  v.mounted,
		Width:    v.width,
	})
}
