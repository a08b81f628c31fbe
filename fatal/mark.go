package fatal

import (
	"errors"

	"github.com/next-trace/scg-fatal/contract"
)

// MarkFatal classifies an arbitrary error as fatal for use in plain error
// pipelines.
//
// Behavior:
//   - nil input => nil output
//   - if err is already a classified Error[error] => retagged, not re-wrapped
//   - otherwise err becomes the payload of a fatal wrapper
func MarkFatal(err error) error {
	if err == nil {
		return nil
	}

	if w, ok := err.(Error[error]); ok {
		return w.Escalate()
	}

	return Fatal(err)
}

// MarkNonFatal classifies an arbitrary error as non-fatal. Same behavior as
// MarkFatal with the opposite tag.
func MarkNonFatal(err error) error {
	if err == nil {
		return nil
	}

	if w, ok := err.(Error[error]); ok {
		return w.Deescalate()
	}

	return NonFatal(err)
}

// IsFatal reports whether err carries a fatal classification anywhere in its
// chain. An unclassified error is not fatal.
func IsFatal(err error) bool {
	var c contract.Classified

	return errors.As(err, &c) && c.IsFatal()
}

// IsNonFatal reports whether err carries an explicitly non-fatal
// classification in its chain. An unclassified error is neither fatal nor
// non-fatal.
func IsNonFatal(err error) bool {
	var c contract.Classified

	return errors.As(err, &c) && !c.IsFatal()
}
