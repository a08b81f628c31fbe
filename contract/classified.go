// Package contract exposes the minimal severity interface used by other packages.
//
// Implementations must keep IsFatal consistent with their internal state and
// support errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Classified is the minimal, stable surface that other packages can depend on
// without importing the concrete wrapper type.
//
// Implementations must:
//   - Report exactly one severity: IsFatal() is the single source of truth.
//   - Support errors.Unwrap via Unwrap() so standard chain helpers
//     (errors.Is / errors.As) can traverse past the classification.
//
// The interface intentionally contains only the severity query and Unwrap to
// keep the API surface minimal and payload-agnostic.
type Classified interface {
	error
	IsFatal() bool
	Unwrap() error
}
