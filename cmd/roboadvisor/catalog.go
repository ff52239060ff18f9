package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/roboadvisor/internal/cli"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List risk levels and their allocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return cli.PrintCatalog(cmd.OutOrStdout(), asJSON)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
