// Package ui is the Bubble Tea shell around the counter state machine.
//
// Core abstractions:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - CounterView: a View that hosts one counter and owns its mount lifecycle
//   - Panel/Layout: where each counter sits and the tab order between them
//   - FocusManager: which counter receives intent keys
//   - OverlayStack: modal views (unmount confirmation) with a dismiss key
//   - KeybindRegistry/KeyHandler: SPC-leader commands shared by every mode
//
// The same counter.Counter is driven by two adapters written in different
// styles: ObjectCounterView keeps state on a struct and exposes lifecycle
// methods, HookCounterView composes closures returned by use* helpers.
package ui
