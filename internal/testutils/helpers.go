package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// WriteFile writes content to name inside a fresh temp dir and returns the
// absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}

// Event builds a Lex event for intent with the given string slots.
// Slots mapped to "" are sent as null, the way Lex reports unfilled slots.
func Event(source lex.InvocationSource, intent string, slots map[string]string) *lex.Event {
	s := lex.Slots{}
	for name, v := range slots {
		if v == "" {
			s[name] = nil
			continue
		}
		s.Set(name, v)
	}
	return &lex.Event{
		MessageVersion:    "1.0",
		InvocationSource:  source,
		UserID:            "test-user",
		CurrentIntent:     &lex.CurrentIntent{Name: intent, Slots: s, ConfirmationStatus: "None"},
		SessionAttributes: lex.SessionAttributes{},
	}
}
