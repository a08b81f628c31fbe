// Package fatal provides a generic wrapper that tags an error as fatal or
// non-fatal without touching the error itself.
//
// It defines a single concrete type Error[E] with value semantics and
// support for errors.Is / errors.As via Unwrap.
package fatal

import (
	"fmt"

	"github.com/next-trace/scg-fatal/contract"
)

// Error is the canonical classified error type.
//
// It holds exactly two pieces of state:
//   - the payload: a caller-defined error carried as opaque cargo
//   - the tag: whether this occurrence is fatal or non-fatal
//
// The tag is the single source of truth for severity; the payload is never
// inspected or mutated. Error is a plain value type: every operation takes
// the receiver by value, leaves it untouched, and returns a fresh value —
// results must be taken from the return value, never read back from the
// original. Two wrappers compare equal (==, for comparable E) iff their
// tags match and their payloads are equal.
type Error[E error] struct {
	err   E
	fatal bool
}

// compile-time guarantee that Error implements contract.Classified
var _ contract.Classified = (*Error[Never])(nil)

// ------ constructors

// NonFatal wraps err as a recoverable condition: the caller may continue,
// retry, or substitute a fallback.
func NonFatal[E error](err E) Error[E] {
	return Error[E]{err: err}
}

// Fatal wraps err as a terminal condition: the caller must propagate and
// must not attempt recovery.
func Fatal[E error](err E) Error[E] {
	return Error[E]{err: err, fatal: true}
}

// ------ queries

// IsNonFatal reports whether this error is recoverable.
func (e Error[E]) IsNonFatal() bool { return !e.fatal }

// IsFatal reports whether this error is terminal.
func (e Error[E]) IsFatal() bool { return e.fatal }

// ------ unwrap

// Inner returns the payload, discarding the tag. Total over both tags; this
// is the designated "I no longer care about severity" escape hatch.
func (e Error[E]) Inner() E { return e.err }

// ------ severity transitions

// Escalate returns the same payload tagged fatal, regardless of the prior
// tag. Idempotent.
func (e Error[E]) Escalate() Error[E] { return Fatal(e.err) }

// Deescalate returns the same payload tagged non-fatal, regardless of the
// prior tag. Idempotent.
func (e Error[E]) Deescalate() Error[E] { return NonFatal(e.err) }

// ------ classification extraction

// Fatality splits the wrapper by severity: a non-fatal error yields
// (payload, nil); a fatal error yields the wrapper itself, unchanged, in the
// error position so the tag survives further propagation up the call chain.
func (e Error[E]) Fatality() (E, error) {
	if e.fatal {
		var zero E
		return zero, e
	}

	return e.err, nil
}

// Recover splits the wrapper by severity and discards the tag on both sides:
// a non-fatal error yields (payload, nil); a fatal error yields the bare
// payload in the error position. This is the bridge into ordinary
// two-outcome handling once severity has been decided.
func (e Error[E]) Recover() (E, error) {
	if e.fatal {
		var zero E
		return zero, e.err
	}

	return e.err, nil
}

// ------ standard error interface

func (e Error[E]) Error() string {
	if e.fatal {
		return fmt.Sprintf("Fatal Error: %v", e.err)
	}

	return fmt.Sprintf("Error: %v", e.err)
}

// Unwrap returns the payload regardless of tag. Severity is a property of
// this occurrence, not of the cause chain: errors.Is / errors.As reach the
// payload and everything it wraps, whatever the tag says.
func (e Error[E]) Unwrap() error { return e.err }
