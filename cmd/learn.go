package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chemtools/latticelab/cli"
	"github.com/chemtools/latticelab/pkg/nav"
	"github.com/chemtools/latticelab/tui/app"
)

// NewLearnCmd starts the interactive learning session.
func NewLearnCmd() *cobra.Command {
	var preset string
	var section string

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Start the interactive lattice enthalpy learning session",
		Long: `Start the interactive lattice enthalpy learning session.

The session has six sections: theory, the Born-Haber cycle, compound
data analysis, practice exercises, detailed compound examples, and
conceptual questions. Navigate with tab/shift+tab or jump directly
with the number keys.`,
		Example: `  # Start at the first section
  latticelab learn

  # Start at the exercises with arrow-key bindings
  latticelab learn --section "Interactive Exercises" --preset arrows`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			if preset == "" {
				preset = cfg.Preset
			}

			start := nav.Theory
			title := section
			if title == "" {
				title = cfg.StartPage
			}
			if title != "" {
				start, err = nav.PageByTitle(title)
				if err != nil {
					return err
				}
			}

			return app.Run(preset, start)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Keybinding preset: vim, arrows")
	cmd.Flags().StringVar(&section, "section", "", "Section title to open on launch")

	return cmd
}
