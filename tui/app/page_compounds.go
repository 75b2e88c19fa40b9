package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/tui/components/table"
	"github.com/chemtools/latticelab/tui/theme"
)

func (m *Model) viewCompounds() string {
	t := theme.DefaultTheme
	compounds := chemistry.Compounds()
	selected := compounds[m.compoundCursor]

	rows := make([][]string, len(compounds))
	for i, c := range compounds {
		rows[i] = []string{c.Formula, strconv.Itoa(c.LatticeEnthalpy)}
	}
	list := table.SelectableTable([]string{"Compound", "kJ/mol"}, rows, m.compoundCursor)

	metrics := table.StatusTable([][]string{
		{"Lattice Enthalpy", fmt.Sprintf("%d kJ/mol", selected.LatticeEnthalpy)},
		{"Cation Charge", fmt.Sprintf("+%d", selected.CationCharge)},
		{"Anion Charge", fmt.Sprintf("-%d", selected.AnionCharge)},
		{"Cation Radius", fmt.Sprintf("%d pm", selected.CationRadius)},
		{"Anion Radius", fmt.Sprintf("%d pm", selected.AnionRadius)},
		{"Charge Product", strconv.Itoa(selected.ChargeProduct())},
	})

	ionSketch := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Error.Render(fmt.Sprintf("(+%d)", selected.CationCharge)),
		t.Muted.Render(" ⟷ "),
		t.Info.Render(fmt.Sprintf("(-%d)", selected.AnionCharge)),
	)

	detail := lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Analysis of "+selected.Formula),
		metrics,
		ionSketch,
		"",
		bulletList(chemistry.CompoundNotes(selected.Name)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Detailed Compound Examples"),
		lipgloss.JoinHorizontal(lipgloss.Top,
			list,
			"   ",
			t.DetailsBox.Render(detail),
		),
		t.Muted.Render("j/k select compound"),
	)
}
