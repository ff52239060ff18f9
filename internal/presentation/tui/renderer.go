package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, nil
		}
		return r.Render(markdown)
	}
}

// ResponseMarkdown describes a dialog response for humans.
func ResponseMarkdown(resp *lex.Response) string {
	var sb strings.Builder
	a := resp.DialogAction

	fmt.Fprintf(&sb, "# %s\n\n", a.Type)
	switch a.Type {
	case lex.ActionElicitSlot:
		fmt.Fprintf(&sb, "The bot asks again for **%s**.\n\n", a.SlotToElicit)
	case lex.ActionDelegate:
		sb.WriteString("All slots so far are valid; the platform picks the next step.\n\n")
	case lex.ActionClose:
		fmt.Fprintf(&sb, "Fulfillment state: **%s**\n\n", a.FulfillmentState)
	}

	if a.Message != nil {
		fmt.Fprintf(&sb, "> %s\n\n", a.Message.Content)
	}

	if len(a.Slots) > 0 {
		sb.WriteString("| Slot | Value |\n|---|---|\n")
		names := make([]string, 0, len(a.Slots))
		for name := range a.Slots {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value := "_empty_"
			if v, ok := a.Slots.Get(name); ok {
				value = "`" + v + "`"
			}
			fmt.Fprintf(&sb, "| %s | %s |\n", name, value)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
