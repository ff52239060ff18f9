package roboadvisor

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/roboadvisor/pkg/dialog"
	"github.com/aretw0/roboadvisor/pkg/lex"
	"github.com/aretw0/roboadvisor/pkg/portfolio"
)

// Version is the release of the code hook.
const Version = "0.1.0"

// Bot is the high-level entry point of the code hook.
// It wraps the dialog dispatcher with the recommendPortfolio intent registered.
type Bot struct {
	dispatcher *dialog.Dispatcher
	hooks      dialog.Hooks
	logger     *slog.Logger
	handlers   map[string]dialog.Handler
}

// Option defines a functional option for configuring the Bot.
type Option func(*Bot)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks dialog.Hooks) Option {
	return func(b *Bot) {
		b.hooks = hooks
	}
}

// WithHandler registers an additional intent handler, or replaces a built-in one.
func WithHandler(intentName string, h dialog.Handler) Option {
	return func(b *Bot) {
		b.handlers[intentName] = h
	}
}

// New builds a Bot serving the recommendPortfolio intent.
func New(opts ...Option) *Bot {
	b := &Bot{
		handlers: map[string]dialog.Handler{
			portfolio.IntentName: portfolio.RecommendPortfolio,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	b.dispatcher = dialog.NewDispatcher(
		dialog.WithLogger(b.logger),
		dialog.WithHooks(b.hooks),
	)
	for name, h := range b.handlers {
		b.dispatcher.Register(name, h)
	}
	return b
}

// Handle runs one code hook invocation. It is safe for concurrent use.
func (b *Bot) Handle(ctx context.Context, ev *lex.Event) (*lex.Response, error) {
	return b.dispatcher.Dispatch(ctx, ev)
}

// Intents lists the intents the bot can serve.
func (b *Bot) Intents() []string {
	return b.dispatcher.Intents()
}
