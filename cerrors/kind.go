package cerrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the driver's exit-code and logging
// policy: everything except ResourceExhaustion is fatal.
type Kind int

const (
	// ConfigError: missing/invalid CLI or file argument, k=0, invalid
	// priority permutation, lambda out of range, epsilon/ell <= 0.
	// Fatal at start.
	ConfigError Kind = iota
	// InputError: malformed graph or seed file, indices out of range,
	// a probability out of [0,1] or p>pBoost. Fatal at start.
	InputError
	// InvariantViolation: a collection invariant broke (e.g. contrib
	// and totalGain desynchronized). Programmer fault; fatal with a
	// diagnostic.
	InvariantViolation
	// ResourceExhaustion: the sample cap was reached before the
	// controller's early-stop test fired. Logged, not fatal; selection
	// proceeds with whatever sketches exist.
	ResourceExhaustion
	// NumericOverflow: a gain-sum accumulation produced ±Inf or NaN.
	// Not expected within documented parameter ranges; fatal with a
	// diagnostic when it happens anyway.
	NumericOverflow
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "ConfigError"
	case InputError:
		return "InputError"
	case InvariantViolation:
		return "InvariantViolation"
	case ResourceExhaustion:
		return "ResourceExhaustion"
	case NumericOverflow:
		return "NumericOverflow"
	default:
		return "Kind(?)"
	}
}

// Fatal reports whether errors of this kind should abort the run.
// ResourceExhaustion is the only kind that doesn't.
func (k Kind) Fatal() bool { return k != ResourceExhaustion }

// Error pairs a Kind with the underlying cause. Err is always non-nil;
// Error unwraps to it so errors.Is/errors.As against a package-local
// sentinel still works through a cerrors wrapper.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies err as kind, attaching no extra context; use
// fmt.Errorf("%w", err) beforehand if a call-site message is needed.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// New builds a cerrors.Error of kind from a plain message, for the
// cases (InvariantViolation, ResourceExhaustion) that originate inside
// this engine rather than wrapping a caller-supplied error.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// KindOf reports the Kind of err if it (or something it wraps) is a
// *Error, and false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
