package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/nav"
	"github.com/chemtools/latticelab/tui/theme"
)

const (
	headerHeight = 3
	footerHeight = 3
)

// View renders the header, the current page, and the footer.
func (m *Model) View() string {
	if m.width < 60 || m.height < 20 {
		return "Terminal too small. Please resize."
	}

	t := theme.DefaultTheme

	headerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DefaultColors.Orange).
		Width(m.width - 4).
		Height(headerHeight - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	mainAreaHeight := m.height - headerHeight - footerHeight - 1
	mainStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DefaultColors.Border).
		Width(m.width - 4).
		Height(mainAreaHeight - 2).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DefaultColors.Orange).
		Width(m.width - 4).
		Height(footerHeight - 2).
		Align(lipgloss.Center, lipgloss.Center)

	header := headerStyle.Render("LATTICE ENTHALPY: INTERACTIVE LEARNING TOOL")

	var body string
	if m.help.ShowAll {
		body = m.help.View(m.keys)
	} else {
		body = m.pageView()
	}
	main := mainStyle.Render(truncateHeight(body, mainAreaHeight-2))

	position := fmt.Sprintf("Section %d of %d — %s",
		int(m.state.Page)+1, len(nav.Pages()), m.state.Page.Title())
	shortHelp := m.help.View(m.keys)
	if m.help.ShowAll {
		shortHelp = t.Muted.Render("? to close help")
	}
	footer := footerStyle.Render(position + "   " + shortHelp)

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, header, main, footer)
}

// pageView dispatches to the renderer for the current page.
func (m *Model) pageView() string {
	switch m.state.Page {
	case nav.Theory:
		return m.viewTheory()
	case nav.BornHaber:
		return m.viewBornHaber()
	case nav.Analysis:
		return m.viewAnalysis()
	case nav.Exercises:
		return m.viewExercises()
	case nav.Compounds:
		return m.viewCompounds()
	case nav.Concepts:
		return m.viewConcepts()
	default:
		return ""
	}
}

// truncateHeight trims the body to the available rows so a busy page
// never pushes the footer off screen.
func truncateHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	trimmed := lines[:maxLines-1]
	trimmed = append(trimmed, theme.DefaultTheme.Muted.Render("… (resize for more)"))
	return strings.Join(trimmed, "\n")
}

// sectionTitle renders a page-local heading.
func sectionTitle(s string) string {
	return theme.DefaultTheme.Title.Render(s)
}

// bulletList renders indented bullet points.
func bulletList(points []string) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString("  • " + p + "\n")
	}
	return b.String()
}
