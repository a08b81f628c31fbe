package fatal

// The combinators below introduce fresh type parameters (the mapped payload
// type E2, the recovery result T), which Go methods cannot do, so they are
// package-level functions taking the wrapper as their first argument.

// Map applies f to the payload and re-wraps the result under the original
// tag. f is invoked exactly once, on the payload only; the tag is never
// touched.
func Map[E, E2 error](e Error[E], f func(E) E2) Error[E2] {
	if e.fatal {
		return Fatal(f(e.err))
	}

	return NonFatal(f(e.err))
}

// RecoverNonFatal attempts recovery from a non-fatal error: f receives the
// payload and may succeed, or fail again (possibly escalating). A fatal
// error short-circuits — the wrapper is returned unchanged in the error
// position and f is never invoked.
func RecoverNonFatal[T any, E error](e Error[E], f func(E) (T, error)) (T, error) {
	if e.fatal {
		var zero T
		return zero, e
	}

	return f(e.err)
}

// RecoverFatal is the exact mirror of RecoverNonFatal: f is invoked only on
// a fatal payload; a non-fatal error short-circuits with the wrapper
// unchanged and f is never invoked.
func RecoverFatal[T any, E error](e Error[E], f func(E) (T, error)) (T, error) {
	if !e.fatal {
		var zero T
		return zero, e
	}

	return f(e.err)
}

// Then invokes f on the payload regardless of tag. This deliberately
// discards severity before recovery is attempted — it is the "treat both
// severities identically" escape hatch, equivalent to Inner followed by f.
func Then[T any, E error](e Error[E], f func(E) (T, error)) (T, error) {
	return f(e.err)
}
