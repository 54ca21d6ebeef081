package field

import "context"

// FailureMessage is the message committed when a check fails outright.
// Check errors are never surfaced to views; the underlying error goes to the
// validator's logger instead.
const FailureMessage = "An error occurred while validating. Try again later."

// Result is the outcome of a single validation check.
type Result struct {
	Valid   bool
	Message string
}

// CheckFunc validates a candidate value. It may block on I/O and should honor
// the context, which is cancelled when the owning Validator is closed.
// Any timeout policy belongs to the check itself; the Validator imposes none.
type CheckFunc func(ctx context.Context, value string) (Result, error)

// State is the read projection of a field exposed to views.
//
// Valid and Message always describe the outcome for the value that was current
// when the reporting check started. A check whose value has since been
// replaced never contributes to State.
type State struct {
	Value   string
	Valid   bool
	Message string
	Pending bool
}
