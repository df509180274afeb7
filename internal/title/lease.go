// Package title owns the window-title side channel of a mounted counter.
//
// A counter acquires a Lease when it becomes active, updates it while the count
// changes, and releases it when torn down. Release writes the fallback label
// exactly once, however many exit paths call it.
package title

import (
	"fmt"
	"sync"
)

// Label is the title shown while a counter is active.
func Label(count int) string {
	return fmt.Sprintf("Count: %d", count)
}

// Lease is an acquired title. The zero value is not usable; use Acquire.
type Lease struct {
	sink     Sink
	fallback string

	mu       sync.Mutex
	current  string
	released bool
	once     sync.Once
}

// Acquire writes initial to sink and returns a lease that restores fallback on
// Release. The lease is returned even when the first write fails so that the
// caller can still release it.
func Acquire(sink Sink, initial, fallback string) (*Lease, error) {
	if sink == nil {
		sink = Discard
	}
	l := &Lease{sink: sink, fallback: fallback, current: initial}
	if err := sink.SetTitle(initial); err != nil {
		return l, fmt.Errorf("acquire title: %w", err)
	}
	return l, nil
}

// Update writes title while the lease is held. After Release it does nothing.
// Writing the title already shown is skipped.
func (l *Lease) Update(title string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released || title == l.current {
		return nil
	}
	l.current = title
	if err := l.sink.SetTitle(title); err != nil {
		return fmt.Errorf("update title: %w", err)
	}
	return nil
}

// Release restores the fallback title. Only the first call writes; later calls
// return nil.
func (l *Lease) Release() error {
	var err error
	l.once.Do(func() {
		l.mu.Lock()
		l.released = true
		l.current = l.fallback
		l.mu.Unlock()
		if werr := l.sink.SetTitle(l.fallback); werr != nil {
			err = fmt.Errorf("release title: %w", werr)
		}
	})
	return err
}
