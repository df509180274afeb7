package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")

	if reg.LookupForMode("q", ModeComparison) == nil {
		t.Error("expected q to be bound")
	}
	if reg.LookupForMode("space q", ModeCounters) == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.LookupForMode("unknown", ModeCounters) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_Modes(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForModes("SPC m", tea.Quit, "Mount", ModeCounters)

	if reg.LookupForMode("SPC m", ModeCounters) == nil {
		t.Error("SPC m should apply in counters mode")
	}
	if reg.LookupForMode("SPC m", ModeComparison) != nil {
		t.Error("SPC m should not apply in comparison mode")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "Execute")
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "), ModeCounters)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeCounters)
	if !consumed || cmd == nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	cmd()
	if !executed {
		t.Error("SPC x command did not run")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	h.Handle(keyMsg(" "), ModeCounters)

	consumed, _ := h.Handle(keyMsg("esc"), ModeCounters)
	if !consumed {
		t.Error("esc should be consumed while the leader waits")
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel the leader")
	}

	consumed, _ = h.Handle(keyMsg("esc"), ModeCounters)
	if consumed {
		t.Error("esc outside leader mode belongs to the views")
	}
}

func TestKeyHandler_UnboundKeysPassThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	for _, k := range []string{"+", "-", "r", "s", "]"} {
		if consumed, _ := h.Handle(keyMsg(k), ModeCounters); consumed {
			t.Errorf("%q should reach the focused counter", k)
		}
	}
	if consumed, cmd := h.Handle(keyMsg("q"), ModeCounters); !consumed || cmd == nil {
		t.Error("q should be handled by the registry")
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC m", tea.Quit, "Mount")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeCounters)
	consumed, cmd := h.Handle(keyMsg("z"), ModeCounters)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("a dead-end sequence should leave leader mode")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForModes("SPC m", tea.Quit, "Mount/unmount", ModeCounters)
	reg.BindForModes("SPC b", tea.Quit, "Back to counters", ModeComparison)
	h := NewKeyHandler(reg)

	if got := RenderKeybindHelp(h, ModeCounters); got != "" {
		t.Errorf("no hints expected before the leader, got %q", got)
	}

	h.Handle(keyMsg(" "), ModeCounters)
	got := RenderKeybindHelp(h, ModeCounters)
	if !strings.Contains(got, "Mount/unmount") {
		t.Errorf("hints missing SPC m: %q", got)
	}
	if strings.Contains(got, "Back to counters") {
		t.Errorf("hints leak a comparison-only binding: %q", got)
	}
}

// keyMsg builds the tea.KeyMsg Bubble Tea delivers for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
