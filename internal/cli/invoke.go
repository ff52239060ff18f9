package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/roboadvisor/internal/presentation/tui"
	"github.com/aretw0/roboadvisor/pkg/lex"
)

// Handler is the part of the bot the CLI drives.
type Handler interface {
	Handle(ctx context.Context, ev *lex.Event) (*lex.Response, error)
}

// InvokeOptions control a single invocation.
type InvokeOptions struct {
	// EventPath is a .json/.yaml/.yml file; empty or "-" reads JSON or YAML from In.
	EventPath    string
	In           io.Reader
	Out          io.Writer
	JSON         bool
	MaxValueSize int
}

// RunInvoke reads one event, runs it through h and prints the response.
// Output is pretty JSON unless Out is a terminal and JSON is false, in
// which case a rendered summary is printed.
func RunInvoke(ctx context.Context, h Handler, opts InvokeOptions) error {
	ev, err := readEvent(opts)
	if err != nil {
		return err
	}
	if err := lex.SanitizeEvent(ev, opts.MaxValueSize); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	resp, err := h.Handle(ctx, ev)
	if err != nil {
		return err
	}

	if !opts.JSON && isTerminal(opts.Out) {
		render := tui.NewRenderer()
		out, err := render(tui.ResponseMarkdown(resp))
		if err != nil {
			return fmt.Errorf("failed to render response: %w", err)
		}
		_, err = fmt.Fprint(opts.Out, out)
		return err
	}

	enc := json.NewEncoder(opts.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func readEvent(opts InvokeOptions) (*lex.Event, error) {
	if opts.EventPath != "" && opts.EventPath != "-" {
		return lex.LoadEvent(opts.EventPath)
	}
	if opts.In == nil {
		return nil, fmt.Errorf("no event file given and no input to read")
	}
	data, err := io.ReadAll(opts.In)
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}
	return lex.ParseEvent(data, "yaml")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
