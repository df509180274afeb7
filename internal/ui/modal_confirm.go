package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks before a destructive action. Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning line
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// NewUnmountConfirmModal asks before discarding a counter's state.
func NewUnmountConfirmModal(v CounterView) *ConfirmModal {
	name := v.Name()
	m := NewConfirmModal(
		"Unmount counter?",
		"Counter: "+name,
		func() tea.Msg { return UnmountCounterMsg{Name: name} },
	)
	m.Details = "Its count and history are discarded and the title is restored."
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "esc", "n":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "enter", "y":
		if m.OnConfirm != nil {
			return m, m.OnConfirm
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n" + Styles.Normal.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Muted.Render("y/Enter: confirm  n/Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
