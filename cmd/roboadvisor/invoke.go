package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/roboadvisor/internal/cli"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [event-file]",
	Short: "Run one Lex event through the code hook",
	Long: `Reads a Lex V1 event from a .json, .yaml or .yml file (or from stdin when
no file or "-" is given) and prints the dialog response.

On a terminal the response is rendered for reading; use --json for raw output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options(cmd)
		cfg, logger, err := cli.Setup(opts)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		bot := cli.NewBot(logger, opts.Debug)
		return cli.RunInvoke(cmd.Context(), bot, cli.InvokeOptions{
			EventPath:    path,
			In:           cmd.InOrStdin(),
			Out:          cmd.OutOrStdout(),
			JSON:         asJSON,
			MaxValueSize: cfg.MaxSlotSize,
		})
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().Bool("json", false, "Always print the raw JSON response")
}
