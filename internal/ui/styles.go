package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI.
const (
	ColorAccent    = "86"  // cyan/green: titles, the count
	ColorHighlight = "205" // magenta: focused borders, keys
	ColorDanger    = "196" // red: decrement, warnings
	ColorPrimary   = "33"  // blue: increment
	ColorMuted     = "241" // gray: hints, previous count
	ColorText      = "252" // light gray: normal text
	ColorSuccess   = "35"  // green: feature checkmarks
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // page title
	Subtitle     lipgloss.Style
	Heading      lipgloss.Style // counter heading
	TitleWarning lipgloss.Style // modal title for destructive actions

	Pane        lipgloss.Style // counter box
	PaneFocused lipgloss.Style
	BoxDanger   lipgloss.Style // confirmation modal
	HintBox     lipgloss.Style // SPC hint bar

	Count    lipgloss.Style
	Previous lipgloss.Style
	Section  lipgloss.Style // "Operation History:" and friends
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Empty    lipgloss.Style
	Feature  lipgloss.Style
	Details  lipgloss.Style

	ButtonDanger    lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonPrimary   lipgloss.Style
	StepInput       lipgloss.Style
	StepEditing     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	HintBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Count: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Previous: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Feature: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	ButtonDanger:    button(ColorDanger),
	ButtonSecondary: button(ColorMuted),
	ButtonPrimary:   button(ColorPrimary),
	StepInput: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	StepEditing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true),
}

func button(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}
