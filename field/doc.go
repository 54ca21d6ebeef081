// Package field implements asynchronous validation state for a single form
// field.
//
// A Validator owns one value. Whenever the value changes it invokes an
// externally supplied CheckFunc in the background and exposes the combined
// {value, valid, message, pending} state to views. Two entry points exist:
// SetValue for user edits and Reset for programmatic seeding or clearing; both
// behave identically with respect to validation.
//
// Results commit under a last-started-cycle-wins rule: if the value changes
// while a check is in flight, the stale check's result is discarded when it
// resolves, regardless of completion order. Closing the validator suppresses
// all outstanding commits, so no state is written after teardown.
//
//	v := field.New(checkNameIsFree, field.WithLogger(log))
//	defer v.Close()
//
//	v.SetValue("alice")        // returns immediately, check runs async
//	st := v.State()            // st.Value == "alice", st.Pending == true
//
// Check errors never reach the exposed message: they are logged through the
// configured logger and normalized to the fixed FailureMessage. The user
// retries simply by editing the value again, which starts a fresh cycle.
//
// The Validator does not throttle. Callers that need to reduce check volume
// (for example per-keystroke HTTP calls) should debounce before calling
// SetValue.
package field
