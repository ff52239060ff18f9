package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/internal/config"
	"github.com/aretw0/roboadvisor/internal/logging"
	"github.com/aretw0/roboadvisor/pkg/dialog"
)

// Options are the settings shared by every command, as parsed from flags.
// Empty fields leave the file/environment configuration untouched.
type Options struct {
	ConfigPath string
	Port       string
	LogLevel   string
	LogFormat  string
	Debug      bool
}

// Setup loads the configuration and applies flag overrides.
func Setup(opts Options) (config.Config, *slog.Logger, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if opts.Port != "" {
		cfg.Server.Port = opts.Port
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logging.New(level, cfg.Log.Format), nil
}

// NewBot builds the bot with the CLI's logging conventions. In debug mode
// every exchange is also traced through lifecycle hooks.
func NewBot(logger *slog.Logger, debug bool, hooks ...dialog.Hooks) *roboadvisor.Bot {
	if debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	return roboadvisor.New(
		roboadvisor.WithLogger(logger),
		roboadvisor.WithLifecycleHooks(dialog.MergeHooks(hooks...)),
	)
}

// createDebugHooks returns hooks that trace every exchange at debug level.
func createDebugHooks(logger *slog.Logger) dialog.Hooks {
	return dialog.Hooks{
		OnRequest: func(ctx context.Context, x *dialog.Exchange) {
			logger.Debug("hook request", "intent", x.Intent, "source", string(x.Source))
		},
		OnResponse: func(ctx context.Context, x *dialog.Exchange) {
			logger.Debug("hook response", "intent", x.Intent, "action", string(x.Action), "duration", x.Duration)
		},
		OnError: func(ctx context.Context, x *dialog.Exchange) {
			logger.Debug("hook error", "intent", x.Intent, "error", x.Err)
		},
	}
}
