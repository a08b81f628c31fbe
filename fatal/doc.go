// Package fatal distinguishes recoverable from fatal error conditions
// without discarding the underlying error value.
//
// It exposes a single generic type Error[E] that implements
// contract.Classified and integrates with the standard library's errors
// helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Exactly two states, NonFatal and Fatal, both carrying an opaque payload
//   - The tag decides how to treat the error; the payload says why it happened
//   - Value semantics: combinators consume their input and return fresh values
//   - Severity transitions (Escalate/Deescalate) never alter the payload
//   - Recovery combinators dispatch strictly by tag and short-circuit otherwise
//
// Map, RecoverNonFatal, RecoverFatal and Then cover payload transformation
// and conditional recovery; MarkFatal/MarkNonFatal and IsFatal/IsNonFatal
// bridge into plain error pipelines. Never is a placeholder payload for
// operations that cannot actually fail. The package itself never decides
// severity and defines no retry policy — those belong to the callers that
// consume the classification.
package fatal
