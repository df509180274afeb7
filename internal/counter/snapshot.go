package counter

// Snapshot is the state exposed for rendering.
type Snapshot struct {
	Count   int
	Step    int
	History []string

	previous    int
	hasPrevious bool
}

// Previous returns the count before the most recent mutation.
// ok is false until the first increment, decrement or reset.
func (s Snapshot) Previous() (n int, ok bool) {
	return s.previous, s.hasPrevious
}
