package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/title"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model, *titleRecorder) {
	t.Helper()
	rec := &titleRecorder{}
	m := NewAppModel(testDeps(rec))
	a := m.AsTeaModel()
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, a, rec
}

// send delivers keys to the app and feeds any keybind result back in, the
// way the Bubble Tea runtime would for an immediate command.
func send(a tea.Model, keys ...string) tea.Msg {
	var last tea.Msg
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		last = nil
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case ToggleMountMsg, UnmountCounterMsg, ShowComparisonMsg, ShowCountersMsg, DismissModalMsg:
			a.Update(msg)
			last = msg
		default:
			last = msg
		}
	}
	return last
}

func TestAppModel_InitMountsBothCounters(t *testing.T) {
	m, _, rec := newTestApp(t)

	for _, c := range m.Counters {
		if !c.Mounted() {
			t.Errorf("%s not mounted after Init", c.Name())
		}
	}
	if rec.last() != title.Label(0) {
		t.Errorf("title = %q", rec.last())
	}
	if m.Focused().Name() != ObjectCounterName {
		t.Errorf("initial focus = %s", m.Focused().Name())
	}
}

func TestAppModel_KeysGoToFocusedCounter(t *testing.T) {
	m, a, _ := newTestApp(t)

	send(a, "+", "+")
	send(a, "tab", "-")

	if got := m.counter(ObjectCounterName).Snapshot().Count; got != 2 {
		t.Errorf("object count = %d, want 2", got)
	}
	if got := m.counter(HookCounterName).Snapshot().Count; got != -1 {
		t.Errorf("hook count = %d, want -1", got)
	}

	send(a, "shift+tab")
	if m.Focused().Name() != ObjectCounterName {
		t.Errorf("shift+tab should move focus back, got %s", m.Focused().Name())
	}
}

func TestAppModel_LastWriterOwnsTitle(t *testing.T) {
	_, a, rec := newTestApp(t)

	send(a, "+", "+", "+")
	if rec.last() != "Count: 3" {
		t.Errorf("title = %q", rec.last())
	}
	send(a, "tab", "-")
	if rec.last() != "Count: -1" {
		t.Errorf("title = %q", rec.last())
	}
}

func TestAppModel_UnmountNeedsConfirmation(t *testing.T) {
	m, a, rec := newTestApp(t)
	send(a, "+")

	send(a, " ", "m")
	if m.Overlays.Len() != 1 {
		t.Fatal("SPC m on a mounted counter should ask first")
	}
	if !strings.Contains(a.View(), "Unmount counter?") {
		t.Error("confirmation not drawn")
	}

	// Intent keys do not reach the counter behind the modal.
	send(a, "+")
	if got := m.Focused().Snapshot().Count; got != 1 {
		t.Errorf("count changed behind the modal: %d", got)
	}

	send(a, "esc")
	if m.Overlays.Len() != 0 || !m.Focused().Mounted() {
		t.Fatal("esc should cancel without unmounting")
	}

	send(a, " ", "m", "y")
	if m.Overlays.Len() != 0 {
		t.Error("modal should close after confirming")
	}
	if m.Focused().Mounted() {
		t.Fatal("counter still mounted after confirming")
	}
	if rec.last() != testDefaultTitle {
		t.Errorf("title after unmount = %q", rec.last())
	}

	send(a, " ", "m")
	if !m.Focused().Mounted() || m.Overlays.Len() != 0 {
		t.Error("SPC m on an unmounted counter should mount it directly")
	}
	if got := m.Focused().Snapshot().Count; got != 0 {
		t.Errorf("remounted count = %d", got)
	}
}

func TestAppModel_ComparisonPage(t *testing.T) {
	m, a, _ := newTestApp(t)

	send(a, " ", "c")
	if m.Mode != ModeComparison {
		t.Fatal("SPC c should open the comparison page")
	}
	if !strings.Contains(a.View(), "Class Components") {
		t.Errorf("comparison copy missing:\n%s", a.View())
	}

	// Intent keys scroll here instead of counting.
	send(a, "k")
	if got := m.Focused().Snapshot().Count; got != 0 {
		t.Errorf("count moved on the comparison page: %d", got)
	}

	send(a, "esc")
	if m.Mode != ModeCounters {
		t.Error("esc should return to the counters")
	}

	send(a, " ", "c", " ", "b")
	if m.Mode != ModeCounters {
		t.Error("SPC b should return to the counters")
	}
}

func TestAppModel_QuitKeys(t *testing.T) {
	for _, keys := range [][]string{{"q"}, {"ctrl+c"}, {" ", "q"}} {
		_, a, _ := newTestApp(t)
		if _, ok := send(a, keys...).(tea.QuitMsg); !ok {
			t.Errorf("%v should quit", keys)
		}
	}
}

func TestAppModel_EditingCapturesKeys(t *testing.T) {
	m, a, _ := newTestApp(t)

	send(a, "s")
	if !m.Focused().Editing() {
		t.Fatal("s should edit the step")
	}
	if msg := send(a, "q"); msg != nil {
		t.Errorf("q while editing produced %T", msg)
	}
	send(a, "tab")
	if m.Focused().Name() != ObjectCounterName {
		t.Error("tab should not move focus while editing")
	}
	send(a, "enter", "tab")
	if m.Focused().Name() != HookCounterName {
		t.Error("tab should move focus after editing")
	}
}

func TestAppModel_CloseRestoresTitle(t *testing.T) {
	m, a, rec := newTestApp(t)
	send(a, "+", "tab", "+")

	m.Close()
	for _, c := range m.Counters {
		if c.Mounted() {
			t.Errorf("%s still mounted after Close", c.Name())
		}
	}
	if rec.last() != testDefaultTitle {
		t.Errorf("title after Close = %q", rec.last())
	}

	n := len(rec.titles)
	m.Close()
	if len(rec.titles) != n {
		t.Error("second Close wrote the title again")
	}
}

func TestAppModel_View(t *testing.T) {
	_, a, _ := newTestApp(t)
	out := a.View()
	for _, want := range []string{"Object-Style Counter", "Hook-Style Counter", "increment"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	send(a, " ")
	if !strings.Contains(a.View(), "Mount/unmount") {
		t.Error("leader hints should show after SPC")
	}
}
