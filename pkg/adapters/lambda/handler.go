package lambda

import (
	"context"
	"io"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// Bot defines what the Lambda adapter needs from the code hook.
type Bot interface {
	Handle(ctx context.Context, ev *lex.Event) (*lex.Response, error)
}

// Handler is the function signature handed to lambda.Start.
type Handler func(ctx context.Context, ev lex.Event) (*lex.Response, error)

// NewHandler adapts bot to the Lambda runtime. Errors (such as an
// unsupported intent) are returned to the runtime, which reports the
// invocation as failed to the bot platform.
func NewHandler(bot Bot, logger *slog.Logger, maxValueSize int) Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func(ctx context.Context, ev lex.Event) (*lex.Response, error) {
		log := logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log = log.With("request_id", lc.AwsRequestID)
		}

		if err := lex.SanitizeEvent(&ev, maxValueSize); err != nil {
			log.Warn("Lambda: Input rejected", "error", err)
			return nil, err
		}

		resp, err := bot.Handle(ctx, &ev)
		if err != nil {
			log.Error("Lambda: Invocation failed", "error", err, "intent", ev.IntentName())
			return nil, err
		}
		return resp, nil
	}
}
