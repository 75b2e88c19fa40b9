package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/exercise"
	"github.com/chemtools/latticelab/tui/components/table"
	"github.com/chemtools/latticelab/tui/theme"
)

func (m *Model) viewExercises() string {
	t := theme.DefaultTheme

	// Mode tabs
	var tabs []string
	for mode := exerciseMode(0); mode < exerciseModeCount; mode++ {
		label := " " + mode.title() + " "
		if mode == m.exMode {
			tabs = append(tabs, t.Selected.Render(label))
		} else {
			tabs = append(tabs, t.Muted.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...) +
		"  " + t.Muted.Render("(←/→ to switch)")

	var body string
	switch m.exMode {
	case modePrediction:
		body = m.viewPredictionQuiz()
	case modeCalculation:
		body = m.viewCalculation()
	case modeRanking:
		body = m.viewRanking()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, "", body)
}

func (m *Model) viewPredictionQuiz() string {
	t := theme.DefaultTheme
	questions := exercise.PredictionQuestions()

	var b strings.Builder
	b.WriteString(sectionTitle("Lattice Enthalpy Prediction Quiz"))
	b.WriteString("\n")

	for qi, q := range questions {
		state := m.quizzes[qi]
		focused := qi == m.quizFocus

		prompt := fmt.Sprintf("Question %d: %s", qi+1, q.Prompt)
		if focused {
			b.WriteString(t.Bold.Render(prompt))
		} else {
			b.WriteString(t.Muted.Render(prompt))
		}
		b.WriteString("\n")

		for oi, opt := range q.Options {
			marker := "  "
			if focused && oi == state.cursor {
				marker = t.Cursor.Render("▶ ")
			}
			line := marker + opt
			if state.checked && oi == state.selected {
				if exercise.CheckOption(state.selected, q.Correct) {
					line += "  " + t.Success.Render("✔ correct")
				} else {
					line += "  " + t.Error.Render("✘ incorrect")
				}
			}
			b.WriteString(line + "\n")
		}
		if state.checked {
			b.WriteString(t.Info.Render("  " + q.Explanation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(t.Muted.Render("j/k choose   enter check   n/p switch question   r reset"))
	return b.String()
}

func (m *Model) viewCalculation() string {
	t := theme.DefaultTheme

	rows := make([][]string, 0, len(exercise.Worksheet()))
	for _, row := range exercise.Worksheet() {
		rows = append(rows, []string{row.Process, row.Energy})
	}

	var b strings.Builder
	b.WriteString(sectionTitle("Born-Haber Cycle Calculations"))
	b.WriteString("\n")
	b.WriteString("Calculate the lattice enthalpy of NaCl using the following data:\n")
	b.WriteString(table.SimpleTable([]string{"Process", "Energy (kJ/mol)"}, rows))
	b.WriteString("\n\n")

	b.WriteString("Lattice enthalpy (kJ/mol): " + m.calcInput.View())
	b.WriteString("\n\n")

	switch {
	case m.calcAnswer == nil && m.calcInput.Value() != "" && !m.calcInput.Focused():
		b.WriteString(t.Warning.Render("Enter a number, then press enter to check."))
	case m.calcAnswer != nil && *m.calcAnswer:
		b.WriteString(t.Success.Render(fmt.Sprintf("✔ Correct! Lattice enthalpy = %d kJ/mol", exercise.CalculationAnswer())))
	case m.calcAnswer != nil:
		b.WriteString(t.Error.Render(fmt.Sprintf("✘ Incorrect. The correct answer is %d kJ/mol", exercise.CalculationAnswer())))
		b.WriteString("\n")
		b.WriteString(t.Muted.Render("Solution: " + exercise.Solution()))
	}
	b.WriteString("\n\n")
	b.WriteString(t.Muted.Render("enter focus/check   esc unfocus   r reset"))
	return b.String()
}

func (m *Model) viewRanking() string {
	t := theme.DefaultTheme
	compounds := exercise.RankingCompounds()

	var b strings.Builder
	b.WriteString(sectionTitle("Ranking Exercise"))
	b.WriteString("\n")
	b.WriteString("Rank these compounds from highest to lowest lattice enthalpy:\n\n")

	for i, name := range compounds {
		marker := "  "
		if i == m.rankCursor {
			marker = t.Cursor.Render("▶ ")
		}
		rank := "-"
		if r, ok := m.ranks[name]; ok {
			rank = strconv.Itoa(r)
		}
		b.WriteString(fmt.Sprintf("%s%-6s rank: %s\n", marker, name, t.Highlight.Render(rank)))
	}
	b.WriteString("\n")

	if m.rankShown {
		user := exercise.OrderByRank(m.ranks)
		correct := exercise.CorrectRanking()

		var left, right strings.Builder
		left.WriteString(t.Bold.Render("Your ranking") + "\n")
		for i, name := range user {
			left.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
		}
		right.WriteString(t.Bold.Render("Reference ranking") + "\n")
		for i, name := range correct {
			right.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			t.DetailsBox.Render(left.String()),
			"  ",
			t.DetailsBox.Render(right.String()),
		))
		b.WriteString("\n")
	}

	b.WriteString(t.Muted.Render("j/k choose compound   1-4 assign rank   enter compare   r reset"))
	return b.String()
}
