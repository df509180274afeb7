package compare

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	subStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("33"))
	prosStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	consStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("205"))
)

// minColumn is the narrowest pros/cons column before they stack vertically.
const minColumn = 30

// Render lays out the full comparison page for the given terminal width.
// A width of zero or less renders at a natural width.
func Render(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(Heading) + "\n")
	b.WriteString(subStyle.Render(Subheading) + "\n\n")
	for _, s := range Sections {
		b.WriteString(renderSection(s, width) + "\n\n")
	}
	b.WriteString(sectionStyle.Render("Lifecycle Methods vs Hooks Comparison") + "\n")
	b.WriteString(LifecycleTable(width))
	return b.String()
}

func renderSection(s Section, width int) string {
	pros := bulletList("✅ Advantages", prosStyle, s.Pros)
	cons := bulletList("❌ Disadvantages", consStyle, s.Cons)

	var body string
	if width > 0 && width/2 < minColumn {
		body = lipgloss.JoinVertical(lipgloss.Left, pros, "", cons)
	} else {
		col := lipgloss.NewStyle()
		if width > 0 {
			col = col.Width(width / 2)
		} else {
			col = col.PaddingRight(4)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, col.Render(pros), col.Render(cons))
	}
	return sectionStyle.Render(s.Title) + "\n" + body
}

func bulletList(title string, style lipgloss.Style, items []string) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, style.Render(title))
	for _, it := range items {
		lines = append(lines, "  • "+it)
	}
	return strings.Join(lines, "\n")
}

// LifecycleTable renders Lifecycle as a bordered table.
func LifecycleTable(width int) string {
	rows := make([][]string, len(Lifecycle))
	for i, r := range Lifecycle {
		rows[i] = []string{r.Object, r.Hook, r.Purpose}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers(LifecycleHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}
