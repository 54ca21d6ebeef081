package field

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// Validator owns a single field value and keeps its validation state current.
//
// Every value change starts a new validation cycle. Cycles are numbered; a
// cycle may only commit its result while it is still the newest one, so a slow
// check that resolves after a later edit is discarded silently. Close
// suppresses all outstanding commits.
//
// All methods are safe for concurrent use.
type Validator struct {
	check    CheckFunc
	logger   *slog.Logger
	observer func(State)

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	emitMu sync.Mutex
	state  State
	cycle  uint64
	closed bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithInitialValue sets the value the field starts with. The initial value is
// reported as valid and is not checked until it changes.
func WithInitialValue(v string) Option {
	return func(val *Validator) { val.state.Value = v }
}

// WithLogger supplies a logger for check failures. Failures are logged with
// full detail here and reach views only as FailureMessage.
func WithLogger(l *slog.Logger) Option {
	return func(val *Validator) {
		if l != nil {
			val.logger = l
		}
	}
}

// WithObserver registers a callback invoked after every state change, in
// commit order. The observer runs on the validator's goroutines and must not
// call back into the Validator synchronously.
func WithObserver(fn func(State)) Option {
	return func(val *Validator) {
		if fn != nil {
			val.observer = fn
		}
	}
}

// New creates a Validator around the given check. The field starts settled:
// valid, empty message, not pending.
func New(check CheckFunc, opts ...Option) *Validator {
	ctx, cancel := context.WithCancel(context.Background())
	v := &Validator{
		check:  check,
		logger: slog.New(slog.DiscardHandler),
		ctx:    ctx,
		cancel: cancel,
		state:  State{Valid: true},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetValue records a user edit. The new value is observable via State
// immediately; the validation cycle it starts settles in the background.
// Setting the same value again still starts a fresh cycle.
func (v *Validator) SetValue(value string) {
	v.revalidate(value)
}

// Reset replaces the value from outside the normal edit path, typically a
// parent seeding or clearing the field. It runs the same validation cycle as
// SetValue.
func (v *Validator) Reset(value string) {
	v.revalidate(value)
}

// State returns a snapshot of the current field state.
func (v *Validator) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close tears the field down. Outstanding checks keep running until they
// notice the cancelled context, but none of them may mutate state anymore.
// Close is idempotent.
func (v *Validator) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()
	v.cancel()
}

func (v *Validator) revalidate(value string) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.cycle++
	cycle := v.cycle
	v.state.Value = value
	v.state.Pending = true
	snap := v.state
	v.emitMu.Lock()
	v.mu.Unlock()
	v.emit(snap)

	future := async.Run(v.ctx, value, v.check)
	go func() {
		res, err := future.Await()
		if err != nil {
			v.logger.Error("field check failed",
				slog.String("value", value),
				slog.String("error", err.Error()),
			)
			res = Result{Valid: false, Message: FailureMessage}
		}
		v.commit(cycle, res)
	}()
}

// commit applies a check result, unless the cycle has been superseded or the
// validator closed in the meantime.
func (v *Validator) commit(cycle uint64, res Result) {
	v.mu.Lock()
	if v.closed || cycle != v.cycle {
		v.mu.Unlock()
		return
	}
	v.state.Valid = res.Valid
	v.state.Message = res.Message
	v.state.Pending = false
	snap := v.state
	v.emitMu.Lock()
	v.mu.Unlock()
	v.emit(snap)
}

// emit delivers a snapshot to the observer. The caller must hold emitMu, which
// keeps deliveries in the same order the snapshots were taken.
func (v *Validator) emit(snap State) {
	defer v.emitMu.Unlock()
	if v.observer != nil {
		v.observer(snap)
	}
}
