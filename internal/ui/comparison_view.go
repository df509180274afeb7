package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"counterlab/internal/compare"
)

// ComparisonView is the scrollable write-up page.
type ComparisonView struct {
	viewport viewport.Model
	width    int
}

// Ensure ComparisonView implements View.
var _ View = (*ComparisonView)(nil)

// NewComparisonView creates the page at a default size; SetSize adjusts it.
func NewComparisonView() *ComparisonView {
	v := &ComparisonView{viewport: viewport.New(100, 30)}
	v.SetSize(100, 30)
	return v
}

// SetSize fits the page to the terminal and re-renders the copy for the width.
func (v *ComparisonView) SetSize(width, height int) {
	v.width = width
	v.viewport.Width = width
	v.viewport.Height = max(height, 1)
	v.viewport.SetContent(compare.Render(width))
}

// Init implements View.
func (v *ComparisonView) Init() tea.Cmd { return nil }

// Update implements View. The viewport handles j/k, pgup/pgdown and the mouse.
func (v *ComparisonView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ComparisonView) View() string {
	return v.viewport.View()
}
