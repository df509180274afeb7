package ui

// ToggleMountMsg mounts the focused counter, or asks before unmounting it (SPC m).
type ToggleMountMsg struct{}

// UnmountCounterMsg tears down the named counter after confirmation.
type UnmountCounterMsg struct {
	Name string
}

// ShowComparisonMsg switches to the comparison page (SPC c).
type ShowComparisonMsg struct{}

// ShowCountersMsg switches back to the counters page.
type ShowCountersMsg struct{}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}
