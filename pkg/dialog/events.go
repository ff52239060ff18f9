package dialog

import (
	"context"
	"time"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// Exchange describes one dispatched event and, once finished, its outcome.
type Exchange struct {
	Intent   string               `json:"intent"`
	Source   lex.InvocationSource `json:"source"`
	UserID   string               `json:"user_id,omitempty"`
	Started  time.Time            `json:"started"`
	Duration time.Duration        `json:"duration,omitempty"`
	Action   lex.ActionType       `json:"action,omitempty"`
	Err      error                `json:"-"`
}

// Hooks are observability callbacks around Dispatch. Any of them may be nil.
type Hooks struct {
	OnRequest  func(context.Context, *Exchange)
	OnResponse func(context.Context, *Exchange)
	OnError    func(context.Context, *Exchange)
}

// MergeHooks returns Hooks that call each of hooks in order.
func MergeHooks(hooks ...Hooks) Hooks {
	return Hooks{
		OnRequest: func(ctx context.Context, x *Exchange) {
			for _, h := range hooks {
				if h.OnRequest != nil {
					h.OnRequest(ctx, x)
				}
			}
		},
		OnResponse: func(ctx context.Context, x *Exchange) {
			for _, h := range hooks {
				if h.OnResponse != nil {
					h.OnResponse(ctx, x)
				}
			}
		},
		OnError: func(ctx context.Context, x *Exchange) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(ctx, x)
				}
			}
		},
	}
}
