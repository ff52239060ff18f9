package lex

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxValueSize bounds a single slot or attribute value (4KB).
	DefaultMaxValueSize = 4096
	// EnvMaxValueSize overrides DefaultMaxValueSize.
	EnvMaxValueSize = "ROBOADVISOR_MAX_SLOT_SIZE"
)

var (
	ErrValueTooLarge = errors.New("value exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("value contains invalid UTF-8 sequences")
)

// SanitizeValue enforces the size limit, validates UTF-8 and strips control
// characters other than newline, tab and carriage return.
func SanitizeValue(value string, limit int) (string, error) {
	if limit <= 0 {
		limit = MaxValueSize()
	}
	if len(value) > limit {
		// Reject rather than truncate: a truncated number is a different number.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrValueTooLarge, len(value), limit)
	}
	if !utf8.ValidString(value) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range value {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return value, nil
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// SanitizeEvent cleans every slot value, session attribute and the input
// transcript of ev in place. limit <= 0 uses MaxValueSize.
func SanitizeEvent(ev *Event, limit int) error {
	if ev == nil {
		return nil
	}
	if ev.CurrentIntent != nil {
		for name, v := range ev.CurrentIntent.Slots {
			if v == nil {
				continue
			}
			clean, err := SanitizeValue(*v, limit)
			if err != nil {
				return fmt.Errorf("slot %q: %w", name, err)
			}
			ev.CurrentIntent.Slots[name] = &clean
		}
	}
	for k, v := range ev.SessionAttributes {
		clean, err := SanitizeValue(v, limit)
		if err != nil {
			return fmt.Errorf("session attribute %q: %w", k, err)
		}
		ev.SessionAttributes[k] = clean
	}
	if ev.InputTranscript != "" {
		clean, err := SanitizeValue(ev.InputTranscript, limit)
		if err != nil {
			return fmt.Errorf("input transcript: %w", err)
		}
		ev.InputTranscript = clean
	}
	return nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

// MaxValueSize returns the configured limit, honouring EnvMaxValueSize.
func MaxValueSize() int {
	if val := os.Getenv(EnvMaxValueSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxValueSize
}
