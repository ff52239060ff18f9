package dialog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedIntent is returned when no handler is registered for an intent.
var ErrUnsupportedIntent = errors.New("intent not supported")

// UnsupportedIntentError carries the intent name that could not be routed.
type UnsupportedIntentError struct {
	Intent string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("intent with name %q not supported", e.Intent)
}

// Unwrap allows errors.Is(err, ErrUnsupportedIntent).
func (e *UnsupportedIntentError) Unwrap() error {
	return ErrUnsupportedIntent
}
