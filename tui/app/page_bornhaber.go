package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/tui/components/chart"
	"github.com/chemtools/latticelab/tui/theme"
)

func (m *Model) viewBornHaber() string {
	t := theme.DefaultTheme
	steps := chemistry.BornHaberSteps()

	values := make([]int, len(steps))
	labels := make([]string, len(steps))
	for i, s := range steps {
		values[i] = s.Cumulative
		labels[i] = s.Name
	}

	diagram := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Born-Haber Cycle for NaCl"),
		chart.EnergyDiagram(values, labels, m.state.Step),
	)

	current := steps[m.state.Step]
	var d strings.Builder
	d.WriteString(t.Bold.Render(fmt.Sprintf("Step %d: %s", m.state.Step+1, current.Name)))
	d.WriteString("\n\n")
	d.WriteString(t.Muted.Render("Process:  ") + current.Process + "\n")
	d.WriteString(t.Muted.Render("Species:  ") + current.Species + "\n")
	d.WriteString(t.Muted.Render("Total:    ") + fmt.Sprintf("%d kJ/mol", current.Cumulative) + "\n\n")
	if m.state.Step == len(steps)-1 {
		d.WriteString(t.Success.Render(current.Commentary))
	} else {
		d.WriteString(t.Info.Render(current.Commentary))
	}
	detail := t.DetailsBox.Width(44).Render(d.String())

	controls := t.Muted.Render("n/→ next step   p/← previous step   r reset")

	return lipgloss.JoinVertical(lipgloss.Left,
		diagram,
		"",
		detail,
		controls,
	)
}
