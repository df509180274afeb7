package title

import (
	"testing"

	"go.uber.org/goleak"
)

// Tmux sinks spawn processes; make sure none of their goroutines outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
