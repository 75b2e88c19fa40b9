package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/pkg/content"
	"github.com/chemtools/latticelab/pkg/exercise"
	"github.com/chemtools/latticelab/tui/components/table"
	"github.com/chemtools/latticelab/tui/theme"
)

func (m *Model) viewConcepts() string {
	t := theme.DefaultTheme

	var tabs []string
	for _, topic := range content.Topics() {
		label := " " + topic.Title() + " "
		if int(topic) == m.topicCursor {
			tabs = append(tabs, t.Selected.Render(label))
		} else {
			tabs = append(tabs, t.Muted.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch content.Topic(m.topicCursor) {
	case content.TopicFactors:
		body = m.viewFactorsTopic()
	case content.TopicCovalentCharacter:
		body = m.viewCovalentTopic()
	case content.TopicPolarization:
		body = m.viewPolarizationTopic()
	case content.TopicCrystalStructures:
		body = m.viewStructuresTopic()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Conceptual Questions & Advanced Topics"),
		tabBar,
		t.Muted.Render("←/→ switch topic"),
		"",
		body,
	)
}

func (m *Model) viewFactorsTopic() string {
	t := theme.DefaultTheme
	var b strings.Builder
	for i, qa := range content.FactorQuestions() {
		b.WriteString(t.Bold.Render(fmt.Sprintf("Q%d: %s", i+1, qa.Question)))
		b.WriteString("\n")
		b.WriteString(wrap(qa.Answer, m.width-10))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *Model) viewCovalentTopic() string {
	t := theme.DefaultTheme

	rows := make([][]string, 0, 4)
	for _, r := range chemistry.CovalentTrend() {
		rows = append(rows, []string{r.Compound, r.Cation, r.Character, r.Evidence})
	}
	trend := table.SimpleTable([]string{"Compound", "Cation", "Covalent Character", "Evidence"}, rows)

	percent := chemistry.CovalentCharacter(m.chargeDensity, m.polarizability)
	class := chemistry.ClassifyCharacter(percent)

	var verdict string
	switch class {
	case chemistry.PredominantlyIonic:
		verdict = t.Success.Render(class.String())
	case chemistry.MixedIonicCovalent:
		verdict = t.Warning.Render(class.String())
	default:
		verdict = t.Error.Render(class.String())
	}

	widget := t.DetailsBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Fajan's Rules Predictor"),
		fmt.Sprintf("Cation charge density:  %s  %.1f", slider(m.chargeDensity), m.chargeDensity),
		fmt.Sprintf("Anion polarizability:   %s  %.1f", slider(m.polarizability), m.polarizability),
		"",
		fmt.Sprintf("Predicted covalent character: %s", t.Highlight.Render(fmt.Sprintf("%.1f%%", percent))),
		verdict,
		t.Muted.Render("j/k charge density   n/p polarizability"),
	))

	rules := bulletList(content.FajansRules())

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Fajan's Rules"),
		rules,
		lipgloss.JoinHorizontal(lipgloss.Top, trend, "  ", widget),
	)
}

// slider renders a [0.1, 2.0] factor as a filled bar.
func slider(v float64) string {
	const cells = 10
	filled := int(v / 2.0 * cells)
	if filled < 1 {
		filled = 1
	}
	if filled > cells {
		filled = cells
	}
	return theme.DefaultTheme.Highlight.Render(strings.Repeat("█", filled)) +
		theme.DefaultTheme.Muted.Render(strings.Repeat("░", cells-filled))
}

func (m *Model) viewPolarizationTopic() string {
	t := theme.DefaultTheme
	q := exercise.PolarizationQuiz()

	var quiz strings.Builder
	quiz.WriteString(t.Bold.Render("Quick Quiz: " + q.Prompt))
	quiz.WriteString("\n")
	for oi, opt := range q.Options {
		marker := "  "
		if oi == m.polarQuiz.cursor {
			marker = t.Cursor.Render("▶ ")
		}
		line := marker + opt
		if m.polarQuiz.checked && oi == m.polarQuiz.selected {
			if exercise.CheckOption(m.polarQuiz.selected, q.Correct) {
				line += "  " + t.Success.Render("✔ correct")
			} else {
				line += "  " + t.Error.Render("✘ incorrect")
			}
		}
		quiz.WriteString(line + "\n")
	}
	if m.polarQuiz.checked {
		quiz.WriteString(t.Info.Render(q.Explanation))
		quiz.WriteString("\n")
	}

	factors := lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Factors Increasing Polarization"),
		bulletList(content.PolarizationFactors()),
	)
	examples := lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render("Examples"),
		bulletList(content.PolarizationExamples()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		wrap(content.PolarizationIntro, m.width-10),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, factors, "   ", examples),
		quiz.String(),
		t.Muted.Render("j/k choose   enter check"),
	)
}

func (m *Model) viewStructuresTopic() string {
	t := theme.DefaultTheme
	structures := chemistry.CrystalStructures()
	selected := structures[m.structureCursor]

	rows := make([][]string, len(structures))
	for i, s := range structures {
		rows[i] = []string{s.Name, s.Archetype, s.Coordination, fmt.Sprintf("%.3f", s.Madelung)}
	}
	list := table.SelectableTable([]string{"Structure", "Archetype", "Coordination", "Madelung"}, rows, m.structureCursor)

	detail := lipgloss.JoinVertical(lipgloss.Left,
		t.Bold.Render(selected.Name+" ("+selected.Archetype+")"),
		t.Muted.Render("Examples: ")+strings.Join(selected.Examples, ", "),
		"",
		bulletList(selected.KeyPoints),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", t.DetailsBox.Render(detail)),
		t.Muted.Render("j/k select structure"),
	)
}
