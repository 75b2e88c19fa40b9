package app

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/tui/components/chart"
	"github.com/chemtools/latticelab/tui/components/table"
)

func (m *Model) viewAnalysis() string {
	compounds := chemistry.Compounds()

	headers := []string{"Compound", "Lattice (kJ/mol)", "q+", "q-", "r+ (pm)", "r- (pm)", "q+×q-", "r++r-"}
	rows := make([][]string, 0, len(compounds))
	for _, c := range compounds {
		rows = append(rows, []string{
			c.Formula,
			strconv.Itoa(c.LatticeEnthalpy),
			strconv.Itoa(c.CationCharge),
			strconv.Itoa(c.AnionCharge),
			strconv.Itoa(c.CationRadius),
			strconv.Itoa(c.AnionRadius),
			strconv.Itoa(c.ChargeProduct()),
			strconv.Itoa(c.RadiusSum()),
		})
	}

	chargePoints := make([]chart.Point, len(compounds))
	radiusPoints := make([]chart.Point, len(compounds))
	for i, c := range compounds {
		chargePoints[i] = chart.Point{Label: c.Name, X: float64(c.ChargeProduct()), Y: float64(c.LatticeEnthalpy)}
		radiusPoints[i] = chart.Point{Label: c.Name, X: float64(c.RadiusSum()), Y: float64(c.LatticeEnthalpy)}
	}

	chartWidth := (m.width - 20) / 2
	if chartWidth < 24 {
		chartWidth = 24
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Lattice Enthalpy vs Charge Product"),
		chart.Scatter(chart.Series{Name: "charge", Points: chargePoints}, chartWidth, 7, "charge product", "kJ/mol"),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Lattice Enthalpy vs Sum of Radii"),
		chart.Scatter(chart.Series{Name: "radii", Points: radiusPoints}, chartWidth, 7, "r+ + r- (pm)", "kJ/mol"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Compound Data Comparison"),
		table.SimpleTable(headers, rows),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right),
	)
}
