package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/chemtools/latticelab/tui/theme"
)

// NewStyledTable creates a new lipgloss table with latticelab's default styling
func NewStyledTable() *ltable.Table {
	t := theme.DefaultTheme

	return ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return t.TableHeader.Padding(0, 1)
			}
			baseStyle := lipgloss.NewStyle().Padding(0, 1)
			if t.UseAlternatingRows && row%2 == 0 {
				return baseStyle.Background(theme.VerySubtleBackground)
			}
			return baseStyle
		})
}

// SimpleTable creates a basic bordered table with headers and rows
func SimpleTable(headers []string, rows [][]string) string {
	table := NewStyledTable().Headers(headers...)
	for _, row := range rows {
		table = table.Row(row...)
	}
	return table.String()
}

// StatusTable creates a borderless label/value table
func StatusTable(items [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, item := range items {
		if len(item) >= 2 {
			label := theme.DefaultTheme.Muted.Render(item[0] + ":")
			table = table.Row(label, item[1])
		}
	}

	return table.String()
}

// SelectableTable creates a table suitable for selection interfaces.
// The cursor indicator is rendered on the left side, outside the border.
func SelectableTable(headers []string, rows [][]string, selectedIndex int) string {
	t := theme.DefaultTheme

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = t.TableHeader.Render(h)
	}

	table := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(styledHeaders...)

	// In the lipgloss table StyleFunc, pre-rendered headers are styled
	// separately and row indices start at 0 for DATA rows only.
	table = table.StyleFunc(func(row, col int) lipgloss.Style {
		style := t.TableRow.Padding(0, 1)
		if t.UseAlternatingRows && row%2 == 1 {
			style = style.Background(theme.VerySubtleBackground)
		}
		return style
	})

	for _, r := range rows {
		table = table.Row(r...)
	}

	// Line layout with headers present:
	// 0 top border, 1 header row, 2 separator, 3+ data rows.
	tableStr := table.String()
	lines := strings.Split(tableStr, "\n")

	var selectedLineIndex int
	if len(headers) > 0 {
		selectedLineIndex = 3 + selectedIndex
	} else {
		selectedLineIndex = 1 + selectedIndex
	}

	arrow := t.Highlight.Render("▶")
	var b strings.Builder
	for i, line := range lines {
		if i == selectedLineIndex {
			b.WriteString(arrow + " " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
