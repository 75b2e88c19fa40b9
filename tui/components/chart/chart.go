// Package chart renders small text charts for the learning pages: an
// energy-level diagram for the Born-Haber cycle and a scatter plot for
// the compound comparisons. Rendering is plain rune-grid work styled
// with lipgloss; no terminal state is touched.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/tui/theme"
)

// Point is one labeled sample of a scatter plot.
type Point struct {
	Label string
	X     float64
	Y     float64
}

// Series is an ordered set of points sharing a color.
type Series struct {
	Name   string
	Points []Point
}

const (
	levelWidth    = 9  // columns per energy level, including the gap
	defaultHeight = 12 // rows of the plot grid
)

// EnergyDiagram renders a step diagram of energy levels. values are the
// cumulative energies per step, labels the step names, and current the
// highlighted step index. Levels are placed vertically by value and
// joined by connectors through the gaps.
func EnergyDiagram(values []int, labels []string, current int) string {
	if len(values) == 0 || len(values) != len(labels) {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	height := defaultHeight
	rowOf := func(v int) int {
		// Row 0 is the top of the grid.
		return (max - v) * (height - 1) / span
	}

	width := len(values) * levelWidth
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	// Horizontal level markers.
	const markerLen = 5
	for i, v := range values {
		row := rowOf(v)
		start := i * levelWidth
		for c := start; c < start+markerLen && c < width; c++ {
			grid[row][c] = '─'
		}
	}

	// Vertical connectors in the gap between adjacent levels.
	for i := 0; i < len(values)-1; i++ {
		from, to := rowOf(values[i]), rowOf(values[i+1])
		col := i*levelWidth + markerLen + 1
		if from == to {
			grid[from][col] = '─'
			continue
		}
		step := 1
		if to < from {
			step = -1
		}
		for r := from; r != to; r += step {
			grid[r][col] = '│'
		}
		if step > 0 {
			grid[to][col] = '▼'
		} else {
			grid[to][col] = '▲'
		}
	}

	t := theme.DefaultTheme
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	// Value row, then label row, highlighted at the current step.
	b.WriteString(renderCells(values, labels, current, t))

	return b.String()
}

func renderCells(values []int, labels []string, current int, t *theme.Theme) string {
	var valueRow, labelRow strings.Builder
	for i := range values {
		valueCell := pad(fmt.Sprintf("%d", values[i]), levelWidth)
		labelCell := pad(truncate(labels[i], levelWidth-1), levelWidth)
		if i == current {
			valueRow.WriteString(t.Highlight.Render(valueCell))
			labelRow.WriteString(t.Highlight.Render(labelCell))
		} else {
			valueRow.WriteString(t.Muted.Render(valueCell))
			labelRow.WriteString(t.Muted.Render(labelCell))
		}
	}
	return valueRow.String() + "\n" + labelRow.String()
}

// Scatter renders a single-series scatter plot with axis extents. Width
// and height bound the plot grid, excluding axis decorations.
func Scatter(s Series, width, height int, xTitle, yTitle string) string {
	if len(s.Points) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}

	minX, maxX := s.Points[0].X, s.Points[0].X
	minY, maxY := s.Points[0].Y, s.Points[0].Y
	for _, p := range s.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	for _, p := range s.Points {
		col := int((p.X - minX) / spanX * float64(width-1))
		row := int((maxY - p.Y) / spanY * float64(height-1))
		grid[row][col] = '●'
	}

	t := theme.DefaultTheme
	axis := lipgloss.NewStyle().Foreground(theme.Border)

	var b strings.Builder
	b.WriteString(t.Muted.Render(yTitle))
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(axis.Render("│"))
		b.WriteString(t.Info.Render(string(row)))
		b.WriteString("\n")
	}
	b.WriteString(axis.Render("└" + strings.Repeat("─", width)))
	b.WriteString("\n")

	extents := fmt.Sprintf("%.0f%s%.0f", minX, pad("", width-len(fmt.Sprintf("%.0f%.0f", minX, maxX))), maxX)
	b.WriteString(" " + t.Muted.Render(extents))
	b.WriteString("\n ")
	b.WriteString(t.Muted.Render(xTitle))

	return b.String()
}

func pad(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
