package nameindex

import (
	"context"
	"strings"

	"github.com/dmitrymomot/formkit/field"
)

// Default messages shown by Checker. Override with the options below.
const (
	DefaultTakenMessage    = "This name is already taken."
	DefaultRequiredMessage = "Name must not be empty."
)

type checkerConfig struct {
	takenMessage    string
	requiredMessage string
}

// CheckerOption customizes the messages produced by Checker.
type CheckerOption func(*checkerConfig)

// WithTakenMessage overrides the message for names that are already claimed.
func WithTakenMessage(msg string) CheckerOption {
	return func(c *checkerConfig) {
		if msg != "" {
			c.takenMessage = msg
		}
	}
}

// WithRequiredMessage overrides the message for empty input.
func WithRequiredMessage(msg string) CheckerOption {
	return func(c *checkerConfig) {
		if msg != "" {
			c.requiredMessage = msg
		}
	}
}

// Checker builds a field.CheckFunc that reports a name as invalid when it is
// empty or already present in the index. Store failures propagate as errors,
// which the field layer normalizes to its generic failure message.
func Checker(idx Index, opts ...CheckerOption) field.CheckFunc {
	cfg := &checkerConfig{
		takenMessage:    DefaultTakenMessage,
		requiredMessage: DefaultRequiredMessage,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx context.Context, value string) (field.Result, error) {
		if strings.TrimSpace(value) == "" {
			return field.Result{Valid: false, Message: cfg.requiredMessage}, nil
		}
		taken, err := idx.Exists(ctx, value)
		if err != nil {
			return field.Result{}, err
		}
		if taken {
			return field.Result{Valid: false, Message: cfg.takenMessage}, nil
		}
		return field.Result{Valid: true}, nil
	}
}
