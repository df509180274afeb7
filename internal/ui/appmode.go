package ui

// AppMode is the page currently shown.
type AppMode int

const (
	ModeCounters AppMode = iota
	ModeComparison
)

func (m AppMode) String() string {
	switch m {
	case ModeCounters:
		return "Counters"
	case ModeComparison:
		return "Comparison"
	default:
		return "Unknown"
	}
}
