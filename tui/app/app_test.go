package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtools/latticelab/pkg/exercise"
	"github.com/chemtools/latticelab/pkg/nav"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New("vim", nav.Theory)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(*Model)
}

func press(t *testing.T, m *Model, keys ...string) *Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

func TestPageNavigation(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, nav.Theory, m.state.Page)

	m = press(t, m, "tab")
	assert.Equal(t, nav.BornHaber, m.state.Page)

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, nav.Theory, m.state.Page, "previous page clamps at the first section")
}

func TestDigitJumpsToSection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "4")
	assert.Equal(t, nav.Exercises, m.state.Page)

	m = press(t, m, "6")
	assert.Equal(t, nav.Concepts, m.state.Page)

	m = press(t, m, "1")
	assert.Equal(t, nav.Theory, m.state.Page)
}

func TestBornHaberStepping(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "2")
	require.Equal(t, nav.BornHaber, m.state.Page)

	m = press(t, m, "n", "n", "n")
	assert.Equal(t, 3, m.state.Step)

	m = press(t, m, "p")
	assert.Equal(t, 2, m.state.Step)

	m = press(t, m, "n", "n", "n", "n", "n", "n")
	assert.Equal(t, nav.StepCount-1, m.state.Step, "advance clamps at the last step")

	m = press(t, m, "r")
	assert.Equal(t, 0, m.state.Step)
}

func TestPredictionQuizCheck(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4")

	m = press(t, m, "enter")
	require.True(t, m.quizzes[0].checked)
	assert.Equal(t, 0, m.quizzes[0].selected)

	view := m.View()
	assert.Contains(t, view, "correct")
}

func TestPredictionQuizFocusSwitching(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4")

	m = press(t, m, "n")
	assert.Equal(t, 1, m.quizFocus)

	m = press(t, m, "down", "enter")
	assert.True(t, m.quizzes[1].checked)
	assert.Equal(t, 1, m.quizzes[1].selected)
	assert.False(t, m.quizzes[0].checked, "only the focused question is answered")
}

func TestCalculationRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "right")
	require.Equal(t, modeCalculation, m.exMode)

	m = press(t, m, "enter")
	require.True(t, m.calcInput.Focused())

	m = press(t, m, "3", "8", "5", "enter")
	require.NotNil(t, m.calcAnswer)
	assert.True(t, *m.calcAnswer)
	assert.False(t, m.calcInput.Focused())
}

func TestCalculationWrongAnswerShowsSolution(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "right", "enter", "5", "0", "0", "enter")

	require.NotNil(t, m.calcAnswer)
	assert.False(t, *m.calcAnswer)
	assert.Contains(t, m.View(), "Solution")
}

func TestDigitsAssignRanksInRankingMode(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "left")
	require.Equal(t, modeRanking, m.exMode)

	m = press(t, m, "3", "down", "1")
	compounds := exercise.RankingCompounds()
	assert.Equal(t, 3, m.ranks[compounds[0]])
	assert.Equal(t, 1, m.ranks[compounds[1]])
	assert.Equal(t, nav.Exercises, m.state.Page, "digits stay in the exercise")

	m = press(t, m, "enter")
	assert.True(t, m.rankShown)
	assert.Contains(t, m.View(), "Reference ranking")
}

func TestResetClearsExercises(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "enter", "left", "2", "r")

	assert.Equal(t, -1, m.quizzes[0].selected)
	assert.Empty(t, m.ranks)
	assert.False(t, m.rankShown)
}

func TestCompoundBrowsing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "5")

	m = press(t, m, "down", "down")
	assert.Equal(t, 2, m.compoundCursor)

	m = press(t, m, "up", "up", "up")
	assert.Equal(t, 0, m.compoundCursor, "cursor clamps at the first compound")

	assert.Contains(t, m.View(), "Charge Product")
}

func TestConceptSliders(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "6", "right")

	m = press(t, m, "up", "up")
	assert.InDelta(t, 1.2, m.chargeDensity, 1e-9)

	m = press(t, m, "p", "p", "p")
	assert.InDelta(t, 0.7, m.polarizability, 1e-9)

	for i := 0; i < 30; i++ {
		m = press(t, m, "down")
	}
	assert.InDelta(t, 0.1, m.chargeDensity, 1e-9, "charge density clamps at the lower bound")
}

func TestPolarizationQuiz(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "6", "right", "right")

	m = press(t, m, "enter")
	assert.True(t, m.polarQuiz.checked)
	assert.Contains(t, m.View(), "correct")
}

func TestViewSmoke(t *testing.T) {
	m := newTestModel(t)

	wants := map[string]string{
		"1": "lattice enthalpy",
		"2": "Born-Haber",
		"3": "Charge Product",
		"4": "Prediction Quiz",
		"5": "Compound Examples",
		"6": "Advanced Topics",
	}
	for digit, want := range wants {
		m = press(t, m, digit)
		view := m.View()
		if !strings.Contains(strings.ToLower(view), strings.ToLower(want)) {
			t.Errorf("section %s view missing %q", digit, want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := New("vim", nav.Theory)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(*Model)
	assert.Contains(t, m.View(), "resize")
}
