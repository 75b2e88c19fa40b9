package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/pkg/content"
	"github.com/chemtools/latticelab/pkg/exercise"
	"github.com/chemtools/latticelab/pkg/nav"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// The numeric answer field captures keystrokes while focused.
		if m.calcInput.Focused() {
			switch msg.String() {
			case "esc":
				m.calcInput.Blur()
				return m, nil
			case "enter":
				m.checkCalculation()
				m.calcInput.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.calcInput, cmd = m.calcInput.Update(msg)
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextPage):
			m.state = m.state.NextPage()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.state = m.state.PrevPage()
			return m, nil

		case key.Matches(msg, m.keys.Digits):
			return m.handleDigit(msg.String())
		}

		switch m.state.Page {
		case nav.BornHaber:
			return m.updateBornHaber(msg)
		case nav.Exercises:
			return m.updateExercises(msg)
		case nav.Compounds:
			return m.updateCompounds(msg)
		case nav.Concepts:
			return m.updateConcepts(msg)
		}
	}

	return m, nil
}

// handleDigit routes number keys: rank assignment while the ranking
// exercise is active, section jumps everywhere else.
func (m *Model) handleDigit(digit string) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return m, nil
	}

	if m.state.Page == nav.Exercises && m.exMode == modeRanking && n >= 1 && n <= 4 {
		compounds := exercise.RankingCompounds()
		m.ranks[compounds[m.rankCursor]] = n
		m.rankShown = false
		return m, nil
	}

	m.state = m.state.GotoPage(nav.Page(n - 1))
	return m, nil
}

func (m *Model) updateBornHaber(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Advance):
		m.state = m.state.Advance()
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Retreat):
		m.state = m.state.Retreat()
	case key.Matches(msg, m.keys.Reset):
		m.state = m.state.Reset()
	}
	return m, nil
}

func (m *Model) updateExercises(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.exMode = (m.exMode + exerciseModeCount - 1) % exerciseModeCount
	case key.Matches(msg, m.keys.Right):
		m.exMode = (m.exMode + 1) % exerciseModeCount

	case key.Matches(msg, m.keys.Advance):
		if m.exMode == modePrediction && m.quizFocus < len(m.quizzes)-1 {
			m.quizFocus++
		}
	case key.Matches(msg, m.keys.Retreat):
		if m.exMode == modePrediction && m.quizFocus > 0 {
			m.quizFocus--
		}

	case key.Matches(msg, m.keys.Up):
		m.moveExerciseCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveExerciseCursor(1)

	case key.Matches(msg, m.keys.Select):
		return m.selectInExercise()

	case key.Matches(msg, m.keys.Reset):
		m.resetExercises()
	}
	return m, nil
}

func (m *Model) moveExerciseCursor(delta int) {
	switch m.exMode {
	case modePrediction:
		q := &m.quizzes[m.quizFocus]
		options := len(exercise.PredictionQuestions()[m.quizFocus].Options)
		q.cursor = clamp(q.cursor+delta, 0, options-1)
	case modeRanking:
		m.rankCursor = clamp(m.rankCursor+delta, 0, len(exercise.RankingCompounds())-1)
	}
}

func (m *Model) selectInExercise() (tea.Model, tea.Cmd) {
	switch m.exMode {
	case modePrediction:
		q := &m.quizzes[m.quizFocus]
		q.selected = q.cursor
		q.checked = true
	case modeCalculation:
		m.calcInput.Focus()
		return m, textinput.Blink
	case modeRanking:
		m.rankShown = true
	}
	return m, nil
}

func (m *Model) checkCalculation() {
	value, err := strconv.ParseFloat(m.calcInput.Value(), 64)
	if err != nil {
		m.calcAnswer = nil
		return
	}
	ok := exercise.CheckCalculation(value)
	m.calcAnswer = &ok
}

func (m *Model) resetExercises() {
	for i := range m.quizzes {
		m.quizzes[i] = quizState{selected: -1}
	}
	m.quizFocus = 0
	m.calcInput.Reset()
	m.calcAnswer = nil
	m.ranks = make(map[string]int)
	m.rankCursor = 0
	m.rankShown = false
}

func (m *Model) updateCompounds(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(chemistry.Compounds())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.compoundCursor = clamp(m.compoundCursor-1, 0, count-1)
	case key.Matches(msg, m.keys.Down):
		m.compoundCursor = clamp(m.compoundCursor+1, 0, count-1)
	}
	return m, nil
}

func (m *Model) updateConcepts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.topicCursor = clamp(m.topicCursor-1, 0, len(content.Topics())-1)
	case key.Matches(msg, m.keys.Right):
		m.topicCursor = clamp(m.topicCursor+1, 0, len(content.Topics())-1)

	case key.Matches(msg, m.keys.Up):
		m.conceptVertical(-1)
	case key.Matches(msg, m.keys.Down):
		m.conceptVertical(1)

	case key.Matches(msg, m.keys.Advance):
		if content.Topic(m.topicCursor) == content.TopicCovalentCharacter {
			m.polarizability = clampFloat(m.polarizability+0.1, 0.1, 2.0)
		}
	case key.Matches(msg, m.keys.Retreat):
		if content.Topic(m.topicCursor) == content.TopicCovalentCharacter {
			m.polarizability = clampFloat(m.polarizability-0.1, 0.1, 2.0)
		}

	case key.Matches(msg, m.keys.Select):
		if content.Topic(m.topicCursor) == content.TopicPolarization {
			m.polarQuiz.selected = m.polarQuiz.cursor
			m.polarQuiz.checked = true
		}
	}
	return m, nil
}

// conceptVertical routes up/down on the concepts page: the covalent
// topic adjusts the charge density factor, the polarization topic moves
// the quick-quiz cursor, and the structures topic browses structures.
func (m *Model) conceptVertical(delta int) {
	switch content.Topic(m.topicCursor) {
	case content.TopicCovalentCharacter:
		m.chargeDensity = clampFloat(m.chargeDensity-float64(delta)*0.1, 0.1, 2.0)
	case content.TopicPolarization:
		options := len(exercise.PolarizationQuiz().Options)
		m.polarQuiz.cursor = clamp(m.polarQuiz.cursor+delta, 0, options-1)
	case content.TopicCrystalStructures:
		m.structureCursor = clamp(m.structureCursor+delta, 0, len(chemistry.CrystalStructures())-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
