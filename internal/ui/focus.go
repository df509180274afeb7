package ui

import "slices"

// FocusManager tracks which counter receives intent keys and rotates focus
// in tab order.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping at the end. Returns the new focus ID.
func (f *FocusManager) Next() string {
	return f.shift(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.shift(-1)
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) shift(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 {
		// Unknown current: forward lands on the first, backward on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
