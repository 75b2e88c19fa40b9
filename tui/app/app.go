package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chemtools/latticelab/logging"
	"github.com/chemtools/latticelab/pkg/nav"
	"github.com/chemtools/latticelab/tui"
)

var log = logging.NewLogger("tui")

// Run starts the interactive learning session and blocks until the user
// quits.
func Run(preset string, start nav.Page) error {
	tui.InitializeTUI()

	log.WithField("preset", preset).WithField("start", start.Title()).Debug("starting session")

	p := tea.NewProgram(New(preset, start), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("session ended with error")
		return err
	}
	return nil
}
