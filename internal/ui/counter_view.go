package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"counterlab/internal/counter"
	"counterlab/internal/ui/textutil"
)

// CounterView is a View hosting one counter. Mount creates fresh state and
// takes the title; Unmount releases the title and discards the state.
type CounterView interface {
	View
	Name() string
	Mount() tea.Cmd
	Unmount()
	Mounted() bool
	Snapshot() counter.Snapshot
	Editing() bool
	SetFocused(bool)
	SetWidth(int)
}

// counterKeyMap holds the intent keys shared by both counter styles.
type counterKeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	EditStep  key.Binding
	StepUp    key.Binding
	StepDown  key.Binding
}

var counterKeys = counterKeyMap{
	Increment: key.NewBinding(key.WithKeys("+", "=", "k", "up"), key.WithHelp("+/k", "increment")),
	Decrement: key.NewBinding(key.WithKeys("-", "j", "down"), key.WithHelp("-/j", "decrement")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	EditStep:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "edit step")),
	StepUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "step+")),
	StepDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "step-")),
}

// ShortHelp implements help.KeyMap.
func (k counterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Reset, k.EditStep, k.StepDown, k.StepUp}
}

// FullHelp implements help.KeyMap.
func (k counterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// counterProps is everything renderCounter needs; both styles fill it in
// their own way.
type counterProps struct {
	Heading  string
	Snapshot counter.Snapshot
	Step     string // rendered step field
	Features []string
	Focused  bool
	Mounted  bool
	Width    int // outer width including border; 0 = natural
}

// renderCounter draws a counter pane.
func renderCounter(p counterProps) string {
	box := Styles.Pane
	if p.Focused {
		box = Styles.PaneFocused
	}
	inner := 0
	if p.Width > 0 {
		box = box.Width(max(p.Width-2, 0))
		inner = max(p.Width-4, 0)
	}

	var b strings.Builder
	b.WriteString(Styles.Heading.Render(p.Heading) + "\n\n")

	if !p.Mounted {
		b.WriteString(Styles.Empty.Render("Counter unmounted") + "\n")
		b.WriteString(Styles.Muted.Render("SPC m to mount a fresh one"))
		return box.Render(b.String())
	}

	s := p.Snapshot
	b.WriteString(Styles.Count.Render(fmt.Sprintf("%d", s.Count)))
	if prev, ok := s.Previous(); ok {
		b.WriteString(" " + Styles.Previous.Render(fmt.Sprintf("(was %d)", prev)))
	}
	b.WriteString("\n\n")

	b.WriteString("Step Size: " + p.Step + " " +
		Styles.Muted.Render(fmt.Sprintf("%d-%d", counter.StepFieldMin, counter.StepFieldMax)) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.ButtonDanger.Render(fmt.Sprintf("-%d", s.Step)),
		Styles.ButtonSecondary.Render("Reset"),
		Styles.ButtonPrimary.Render(fmt.Sprintf("+%d", s.Step)),
	) + "\n\n")

	b.WriteString(Styles.Section.Render("Operation History:") + "\n")
	if len(s.History) == 0 {
		b.WriteString(Styles.Empty.Render("  No operations yet") + "\n")
	}
	for _, entry := range s.History {
		b.WriteString(fitLine("  • "+entry, inner) + "\n")
	}

	if len(p.Features) > 0 {
		b.WriteString("\n" + Styles.Section.Render("Features:") + "\n")
		for i, f := range p.Features {
			line := Styles.Feature.Render("  ✓ ") + fitLine(f, inner-4)
			if i < len(p.Features)-1 {
				line += "\n"
			}
			b.WriteString(line)
		}
	}
	return box.Render(b.String())
}

// fitLine truncates s to width columns; width <= 0 leaves s alone.
func fitLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return textutil.Truncate(s, width)
}
