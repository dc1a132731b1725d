package advanced

import "github.com/pkg/errors"

// Threading errors through every event handler of the sweep would bury the
// algorithm. Instead, broken invariants panic, and the public API recovers to
// convert them to an error.

// PassError wraps the error a pass panicked with. Wrapping keeps runtime
// errors, which are also errors, from being mistaken for ours.
type PassError struct {
	error
}

func (e PassError) Unwrap() error {
	return e.error
}

// Panic with a PassError.
func fatalf(format string, args ...interface{}) {
	panic(PassError{errors.Errorf(format, args...)})
}

// Convert a recovered PassError into an error. Any other panic is a real bug
// and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if passError, ok := r.(PassError); ok {
			return passError
		}
		panic(r)
	}
	return nil
}
