package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model: two counters side by side plus the comparison page.
type AppModel struct {
	Mode       AppMode
	Counters   []CounterView // focus order
	Layout     Layout
	Focus      *FocusManager
	Comparison *ComparisonView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Deps       Deps

	help   help.Model
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds the object-style and hook-style counters around deps.
// Counters mount in Init.
func NewAppModel(deps Deps) *AppModel {
	counters := []CounterView{NewObjectCounterView(deps), NewHookCounterView(deps)}
	layout := sideBySide{views: counters}

	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.BindForModes("SPC m", func() tea.Msg { return ToggleMountMsg{} }, "Mount/unmount", ModeCounters)
	reg.BindForModes("SPC c", func() tea.Msg { return ShowComparisonMsg{} }, "Comparison", ModeCounters)
	reg.BindForModes("SPC b", func() tea.Msg { return ShowCountersMsg{} }, "Back to counters", ModeComparison)

	m := &AppModel{
		Mode:       ModeCounters,
		Counters:   counters,
		Layout:     layout,
		Focus:      NewFocusManager(layout.FocusOrder()),
		Comparison: NewComparisonView(),
		KeyHandler: NewKeyHandler(reg),
		Deps:       deps,
		help:       newHelpModel(),
	}
	m.Focus.OnChange = func(_, to string) { m.syncFocus(to) }
	m.syncFocus(m.Focus.Current)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close unmounts every counter, restoring the default title. Call it once the
// program has exited; it is safe to call more than once.
func (m *AppModel) Close() {
	m.Deps.Window.Detach()
	for _, c := range m.Counters {
		c.Unmount()
	}
}

// Focused returns the counter that receives intent keys.
func (m *AppModel) Focused() CounterView {
	return m.counter(m.Focus.Current)
}

func (m *AppModel) counter(name string) CounterView {
	for _, c := range m.Counters {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (m *AppModel) syncFocus(current string) {
	for _, c := range m.Counters {
		c.SetFocused(c.Name() == current)
	}
}

// resize applies the layout bounds to every panel.
func (m *AppModel) resize(width, height int) {
	m.width, m.height = width, height
	for _, p := range m.Layout.Panels() {
		_, _, w, _ := p.Bounds(width, height)
		p.View.SetWidth(w)
	}
	m.help.Width = width
	m.Comparison.SetSize(width, height-headerHeight-footerHeight)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.Counters))
	for _, c := range a.Counters {
		cmds = append(cmds, c.Mount())
	}
	cmds = append(cmds, a.Deps.Window.Flush())
	return tea.Batch(cmds...)
}

// Update implements tea.Model. Titles queued while handling msg are sent to
// the renderer along with the view's command.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	switch flush := a.Deps.Window.Flush(); {
	case flush == nil:
	case cmd == nil:
		cmd = flush
	default:
		cmd = tea.Batch(cmd, flush)
	}
	return model, cmd
}

func (a *appModelAdapter) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ToggleMountMsg:
		return a, a.toggleMount()
	case UnmountCounterMsg:
		a.Overlays.Pop()
		if c := a.counter(msg.Name); c != nil {
			c.Unmount()
		}
		return a, nil
	case ShowComparisonMsg:
		a.Mode = ModeComparison
		return a, nil
	case ShowCountersMsg:
		a.Mode = ModeCounters
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Anything else (cursor blink, mouse) goes to the active view.
	return a, a.forward(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays take input first.
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	// A counter editing its step field gets every key, including q and SPC.
	if a.Mode == ModeCounters {
		if c := a.Focused(); c != nil && c.Editing() {
			_, cmd := c.Update(msg)
			return a, cmd
		}
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
		return a, cmd
	}

	switch a.Mode {
	case ModeComparison:
		if msg.String() == "esc" {
			a.Mode = ModeCounters
			return a, nil
		}
	case ModeCounters:
		switch msg.String() {
		case "tab", "right", "l":
			a.Focus.Next()
			return a, nil
		case "shift+tab", "left", "h":
			a.Focus.Prev()
			return a, nil
		}
	}
	return a, a.forward(msg)
}

// forward hands msg to the focused counter or the comparison page.
func (a *appModelAdapter) forward(msg tea.Msg) tea.Cmd {
	if a.Mode == ModeComparison {
		_, cmd := a.Comparison.Update(msg)
		return cmd
	}
	if c := a.Focused(); c != nil {
		_, cmd := c.Update(msg)
		return cmd
	}
	return nil
}

func (a *appModelAdapter) toggleMount() tea.Cmd {
	c := a.Focused()
	if c == nil {
		return nil
	}
	if !c.Mounted() {
		return c.Mount()
	}
	a.Overlays.Push(Overlay{View: NewUnmountConfirmModal(c), Dismiss: "esc"})
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Counter Lab") + "\n")
	b.WriteString(Styles.Subtitle.Render("Object-style vs hook-style components over one state machine") + "\n\n")

	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
		return b.String()
	}

	switch a.Mode {
	case ModeComparison:
		b.WriteString(a.Comparison.View() + "\n")
		b.WriteString(Styles.Muted.Render("j/k scroll • esc back • SPC for commands"))
	default:
		panes := make([]string, 0, len(a.Counters))
		for _, c := range a.Counters {
			panes = append(panes, c.View())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...) + "\n")
		b.WriteString(a.help.ShortHelpView(counterKeys.ShortHelp()))
		b.WriteString(Styles.Muted.Render(" • tab focus • SPC for commands"))
	}

	if hints := RenderKeybindHelp(a.KeyHandler, a.Mode); hints != "" {
		b.WriteString("\n" + hints)
	}
	return b.String()
}
