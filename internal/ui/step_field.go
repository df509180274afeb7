package ui

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/counter"
)

// stepField is the step-size input. It accepts digits only; the declared
// 1-10 range is shown as a hint and is not enforced on typed values.
type stepField struct {
	input textinput.Model
}

func newStepField() stepField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "1"
	ti.CharLimit = 4
	ti.Width = 4
	ti.SetValue(strconv.Itoa(counter.DefaultStep))
	return stepField{input: ti}
}

// Editing reports whether the field has focus.
func (f *stepField) Editing() bool {
	return f.input.Focused()
}

// Begin focuses the field showing the current step.
func (f *stepField) Begin(step int) tea.Cmd {
	f.input.SetValue(strconv.Itoa(step))
	f.input.CursorEnd()
	return f.input.Focus()
}

// End leaves editing and shows the step actually stored.
func (f *stepField) End(step int) {
	f.input.Blur()
	f.input.SetValue(strconv.Itoa(step))
}

// Sync shows step when not editing.
func (f *stepField) Sync(step int) {
	if !f.Editing() {
		f.input.SetValue(strconv.Itoa(step))
	}
}

// Update feeds msg to the field. raw is the text after the update; changed
// reports an edit, done reports enter or esc.
func (f *stepField) Update(msg tea.Msg) (raw string, changed, done bool, cmd tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "esc":
			return f.input.Value(), false, true, nil
		}
		if km.Type == tea.KeyRunes && !allDigits(km.Runes) {
			return f.input.Value(), false, false, nil
		}
	}
	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	raw = f.input.Value()
	return raw, raw != before, false, cmd
}

// View renders the field; hint is appended outside the input.
func (f *stepField) View() string {
	if f.Editing() {
		return Styles.StepEditing.Render("[" + f.input.View() + "]")
	}
	return Styles.StepInput.Render("[" + f.input.Value() + "]")
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(rs) > 0
}

// nudgeStep returns the step one notch up or down, kept inside the field's
// declared bounds like a number input's spinner arrows.
func nudgeStep(step, delta int) int {
	next := step + delta
	if next < counter.StepFieldMin {
		return counter.StepFieldMin
	}
	if next > counter.StepFieldMax {
		return counter.StepFieldMax
	}
	return next
}
