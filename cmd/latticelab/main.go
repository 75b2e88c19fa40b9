package main

import (
	"os"

	"github.com/chemtools/latticelab/cli"
	"github.com/chemtools/latticelab/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"latticelab",
		"An interactive terminal tool for learning lattice enthalpy",
	)

	rootCmd.AddCommand(cmd.NewLearnCmd())
	rootCmd.AddCommand(cmd.NewDataCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.Flags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
