package ingest

import "github.com/pkg/errors"

// MalformedInputError reports a structurally or semantically invalid input
// document: a missing required field, a non-positive detection size, or an
// unparseable timestamp. It names the offending timestamp or field so the
// caller can locate the bad record without re-scanning the file.
type MalformedInputError struct {
	Timestamp string
	Field     string
	cause     error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Timestamp != "" {
		msg += " at timestamp " + e.Timestamp
	}
	if e.Field != "" {
		msg += " (field " + e.Field + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.cause }

func malformedInput(timestamp, field, msg string, args ...interface{}) error {
	return &MalformedInputError{Timestamp: timestamp, Field: field, cause: errors.Errorf(msg, args...)}
}

// IOError reports that the input could not be read or the output could not
// be written.
type IOError struct {
	Path  string
	cause error
}

func (e *IOError) Error() string {
	return "io failure at " + e.Path + ": " + e.cause.Error()
}

func (e *IOError) Unwrap() error { return e.cause }

func ioFailure(path string, err error) error {
	return &IOError{Path: path, cause: err}
}
