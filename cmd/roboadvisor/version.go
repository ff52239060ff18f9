package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of roboadvisor",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), roboadvisor.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
