package mot

import "github.com/pkg/errors"

// InvariantViolationError reports a failure that should be unreachable
// given correctly validated input: a non-finite detection reaching the
// engine, or the assignment solver failing to return a permutation. It is
// always a programming error, never a data problem, and the process is
// expected to treat it as fatal.
type InvariantViolationError struct {
	cause error
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.cause.Error()
}

func (e *InvariantViolationError) Unwrap() error { return e.cause }

func newInvariantViolation(msg string, args ...interface{}) error {
	return &InvariantViolationError{cause: errors.Errorf(msg, args...)}
}

func wrapInvariantViolation(err error, msg string) error {
	return &InvariantViolationError{cause: errors.Wrap(err, msg)}
}
