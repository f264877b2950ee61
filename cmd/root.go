package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for spec2wsx.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"spec2wsx",
		"Convert spectool_raw captures into Chanalyzer WSX containers",
	)

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
