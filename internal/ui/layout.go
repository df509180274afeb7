package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string
}

// headerHeight and footerHeight are the rows reserved around the panels.
const (
	headerHeight = 3
	footerHeight = 2
)

// sideBySide places counters in equal-width columns, left to right.
type sideBySide struct {
	views []CounterView
}

// Panels implements Layout.
func (l sideBySide) Panels() []Panel {
	n := len(l.views)
	panels := make([]Panel, n)
	for i, v := range l.views {
		i := i
		panels[i] = Panel{
			ID:   v.Name(),
			View: v,
			Bounds: func(width, height int) (x, y, w, h int) {
				w = width / n
				h = height - headerHeight - footerHeight
				if h < 0 {
					h = 0
				}
				return i * w, headerHeight, w, h
			},
		}
	}
	return panels
}

// FocusOrder implements Layout.
func (l sideBySide) FocusOrder() []string {
	order := make([]string, len(l.views))
	for i, v := range l.views {
		order[i] = v.Name()
	}
	return order
}
