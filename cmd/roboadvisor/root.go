package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/roboadvisor/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "roboadvisor",
	Short: "RoboAdvisor is a Lex dialog code hook that recommends investment portfolios",
	Long: `RoboAdvisor validates an investor's age and investment amount during the
dialog and recommends a bonds/equities split once the intent is fulfilled.
The same handler runs on AWS Lambda, as an HTTP webhook and as an MCP server.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (.yaml, .yml or .json); defaults to ./roboadvisor.yaml when present")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().Bool("debug", false, "Trace every dialog exchange")
}

// options collects the persistent flags shared by every command.
func options(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Debug:      debug,
	}
}
