package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/roboadvisor/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP webhook server",
	Long: `Starts RoboAdvisor as an HTTP server. POST a Lex V1 event to /dialog to
receive the dialog response. Prometheus metrics are exposed at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options(cmd)
		opts.Port, _ = cmd.Flags().GetString("port")

		cfg, logger, err := cli.Setup(opts)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		srv := cli.NewServer(cfg, logger, opts.Debug)
		if err := cli.RunServe(ctx, srv, logger); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Debug("shutdown signal", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config, default 8080)")
}
