package counter

// Intent is a discrete user request to change counter state.
type Intent int

const (
	IntentIncrement Intent = iota
	IntentDecrement
	IntentReset
	IntentSetStep
)

func (i Intent) String() string {
	switch i {
	case IntentIncrement:
		return "increment"
	case IntentDecrement:
		return "decrement"
	case IntentReset:
		return "reset"
	case IntentSetStep:
		return "set_step"
	default:
		return "unknown"
	}
}
