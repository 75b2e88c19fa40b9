package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/content"
	"github.com/chemtools/latticelab/tui/components/table"
	"github.com/chemtools/latticelab/tui/theme"
)

func (m *Model) viewTheory() string {
	t := theme.DefaultTheme
	var b strings.Builder

	b.WriteString(sectionTitle("What is Lattice Enthalpy?"))
	b.WriteString("\n")
	b.WriteString(wrap(content.Definition, m.width-10))
	b.WriteString("\n\n")
	b.WriteString(t.Code.Render(content.DefinitionEquation))
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Factors Affecting Lattice Enthalpy"))
	b.WriteString("\n")
	for i, f := range content.Factors() {
		b.WriteString(t.Bold.Render(numbered(i+1, f.Title)))
		b.WriteString("\n")
		b.WriteString(bulletList(f.Points))
	}
	b.WriteString("\n")

	// Born-Landé panel
	rows := make([][]string, 0, len(content.BornLandeVariables()))
	for _, v := range content.BornLandeVariables() {
		rows = append(rows, []string{v.Symbol, v.Meaning})
	}
	equation := t.Code.Render(content.BornLandeEquation)
	glossary := table.StatusTable(rows)
	panel := lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Born-Landé Equation"), equation, glossary)
	b.WriteString(panel)
	b.WriteString("\n")

	b.WriteString(t.Info.Render("Key insight: " + content.KeyInsight))
	return b.String()
}

func numbered(n int, s string) string {
	return strconv.Itoa(n) + ". " + s
}

// wrap folds text at the given width on word boundaries.
func wrap(s string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	var b strings.Builder
	line := 0
	for _, w := range words {
		if line > 0 && line+1+len(w) > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
