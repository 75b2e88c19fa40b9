package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chemtools/latticelab/pkg/chemistry"
	"github.com/chemtools/latticelab/tui/components/table"
)

// NewDataCmd groups the reference-data listing commands.
func NewDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the reference data used by the learning tool",
	}

	cmd.AddCommand(newDataCompoundsCmd())
	cmd.AddCommand(newDataStructuresCmd())
	cmd.AddCommand(newDataCycleCmd())

	return cmd
}

func newDataCompoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compounds",
		Short: "List the ionic compounds and their lattice enthalpies",
		RunE: func(cmd *cobra.Command, args []string) error {
			compounds := chemistry.Compounds()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(compounds)
			}

			rows := make([][]string, 0, len(compounds))
			for _, c := range compounds {
				rows = append(rows, []string{
					c.Formula,
					strconv.Itoa(c.LatticeEnthalpy),
					strconv.Itoa(c.CationCharge),
					strconv.Itoa(c.AnionCharge),
					strconv.Itoa(c.CationRadius),
					strconv.Itoa(c.AnionRadius),
				})
			}
			fmt.Println(table.SimpleTable(
				[]string{"Compound", "Lattice (kJ/mol)", "q+", "q-", "r+ (pm)", "r- (pm)"},
				rows,
			))
			return nil
		},
	}
}

func newDataStructuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structures",
		Short: "List the crystal structures and Madelung constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			structures := chemistry.CrystalStructures()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(structures)
			}

			rows := make([][]string, 0, len(structures))
			for _, s := range structures {
				rows = append(rows, []string{
					s.Name,
					s.Archetype,
					s.Coordination,
					fmt.Sprintf("%.3f", s.Madelung),
				})
			}
			fmt.Println(table.SimpleTable(
				[]string{"Structure", "Archetype", "Coordination", "Madelung"},
				rows,
			))
			return nil
		},
	}
}

func newDataCycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Print the Born-Haber cycle steps for NaCl",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := chemistry.BornHaberSteps()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(steps)
			}

			rows := make([][]string, 0, len(steps))
			for i, s := range steps {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					s.Name,
					s.Process,
					strconv.Itoa(s.Delta),
					strconv.Itoa(s.Cumulative),
				})
			}
			fmt.Println(table.SimpleTable(
				[]string{"Step", "Name", "Process", "ΔH (kJ/mol)", "Total (kJ/mol)"},
				rows,
			))
			return nil
		},
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
