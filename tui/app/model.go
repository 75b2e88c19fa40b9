package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chemtools/latticelab/pkg/exercise"
	"github.com/chemtools/latticelab/pkg/nav"
)

// exerciseMode selects which of the three sub-exercises is active.
type exerciseMode int

const (
	modePrediction exerciseMode = iota
	modeCalculation
	modeRanking

	exerciseModeCount = 3
)

func (m exerciseMode) title() string {
	switch m {
	case modePrediction:
		return "Prediction Quiz"
	case modeCalculation:
		return "Calculation Practice"
	default:
		return "Ranking Exercise"
	}
}

// quizState tracks a single multiple-choice question widget.
type quizState struct {
	cursor   int  // highlighted option
	selected int  // chosen option, -1 when unanswered
	checked  bool // answer revealed
}

// Model is the state of the learning TUI.
type Model struct {
	state nav.State
	keys  KeyMap
	help  help.Model

	width  int
	height int

	// Exercises page
	exMode     exerciseMode
	quizzes    []quizState // one per prediction question
	quizFocus  int         // which question has focus
	calcInput  textinput.Model
	calcAnswer *bool // nil until checked
	rankCursor int
	ranks      map[string]int
	rankShown  bool

	// Compounds page
	compoundCursor int

	// Concepts page
	topicCursor     int
	structureCursor int
	chargeDensity   float64
	polarizability  float64

	// Concepts polarization quick quiz
	polarQuiz quizState
}

// New creates the TUI model. preset selects the keybinding style and
// start the opening page.
func New(preset string, start nav.Page) *Model {
	input := textinput.New()
	input.Placeholder = "kJ/mol"
	input.CharLimit = 8
	input.Width = 12

	quizzes := make([]quizState, len(exercise.PredictionQuestions()))
	for i := range quizzes {
		quizzes[i].selected = -1
	}

	return &Model{
		state:          nav.State{}.GotoPage(start),
		keys:           KeyMapForPreset(preset),
		help:           help.New(),
		calcInput:      input,
		quizzes:        quizzes,
		ranks:          make(map[string]int),
		chargeDensity:  1.0,
		polarizability: 1.0,
		polarQuiz:      quizState{selected: -1},
	}
}

// Init is the first command that will be executed.
func (m *Model) Init() tea.Cmd {
	return nil
}
