package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/title"
)

// ProgramTitle is a title.Sink for the terminal the Bubble Tea program renders
// to. While the program runs, titles are queued and handed to the renderer as
// tea.SetWindowTitle commands; the latest one wins. After Detach, titles go
// straight to the fallback sink, for teardown once the program has exited.
type ProgramTitle struct {
	mu       sync.Mutex
	pending  string
	dirty    bool
	detached bool
	fallback title.Sink
}

// Ensure ProgramTitle implements title.Sink.
var _ title.Sink = (*ProgramTitle)(nil)

// NewProgramTitle returns a sink that writes to fallback once detached.
// A nil fallback discards those writes.
func NewProgramTitle(fallback title.Sink) *ProgramTitle {
	if fallback == nil {
		fallback = title.Discard
	}
	return &ProgramTitle{fallback: fallback}
}

// SetTitle implements title.Sink.
func (p *ProgramTitle) SetTitle(t string) error {
	p.mu.Lock()
	if p.detached {
		p.mu.Unlock()
		return p.fallback.SetTitle(t)
	}
	p.pending = t
	p.dirty = true
	p.mu.Unlock()
	return nil
}

// Flush returns a command setting the last queued title, or nil if nothing
// changed since the previous flush.
func (p *ProgramTitle) Flush() tea.Cmd {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.dirty || p.detached {
		return nil
	}
	p.dirty = false
	return tea.SetWindowTitle(p.pending)
}

// Detach routes later titles to the fallback sink. Call it once the program
// no longer owns the terminal.
func (p *ProgramTitle) Detach() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.detached = true
	p.dirty = false
	p.mu.Unlock()
}
