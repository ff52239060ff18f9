// Command lambda is the AWS Lambda entrypoint of the code hook.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/internal/config"
	"github.com/aretw0/roboadvisor/internal/logging"
	lambdaAdapter "github.com/aretw0/roboadvisor/pkg/adapters/lambda"
)

func main() {
	// Lambda is configured through ROBOADVISOR_* environment variables only.
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(level, "json")

	bot := roboadvisor.New(roboadvisor.WithLogger(logger))
	lambda.Start(lambdaAdapter.NewHandler(bot, logger, cfg.MaxSlotSize))
}
