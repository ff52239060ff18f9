package dialog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// Handler serves a single intent.
type Handler func(ctx context.Context, ev *lex.Event) (*lex.Response, error)

// Dispatcher routes events to the handler registered for their intent.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	hooks    Hooks
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHooks registers lifecycle hooks.
func WithHooks(hooks Hooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher with no handlers.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a handler for intentName, replacing any existing one.
func (d *Dispatcher) Register(intentName string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[intentName] = h
}

// Intents returns the registered intent names in sorted order.
func (d *Dispatcher) Intents() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler for the event's current intent.
// An event for an unregistered intent fails with *UnsupportedIntentError
// and produces no response.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *lex.Event) (*lex.Response, error) {
	x := &Exchange{
		Intent:  ev.IntentName(),
		Started: time.Now(),
	}
	if ev != nil {
		x.Source = ev.InvocationSource
		x.UserID = ev.UserID
	}
	log := d.logger.With("intent", x.Intent, "source", string(x.Source))
	if x.UserID != "" {
		log = log.With("user_id", x.UserID)
	}

	if d.hooks.OnRequest != nil {
		d.hooks.OnRequest(ctx, x)
	}
	log.Debug("dispatching event")

	resp, err := d.dispatch(ctx, ev, x.Intent)
	x.Duration = time.Since(x.Started)

	if err != nil {
		x.Err = err
		log.Error("dialog hook failed", "error", err, "duration", x.Duration)
		if d.hooks.OnError != nil {
			d.hooks.OnError(ctx, x)
		}
		return nil, err
	}

	x.Action = resp.DialogAction.Type
	log.Info("dialog hook responded", "action", string(x.Action), "duration", x.Duration)
	if d.hooks.OnResponse != nil {
		d.hooks.OnResponse(ctx, x)
	}
	return resp, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, ev *lex.Event, intent string) (*lex.Response, error) {
	d.mu.RLock()
	h, ok := d.handlers[intent]
	d.mu.RUnlock()

	if !ok {
		return nil, &UnsupportedIntentError{Intent: intent}
	}

	resp, err := h(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("intent %s: %w", intent, err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("intent %s: %w", intent, err)
	}
	return resp, nil
}
