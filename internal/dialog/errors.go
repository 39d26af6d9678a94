package dialog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies dialog errors. IO errors come from filesystem reads
// and directory creation; validation errors are field-scoped and only gate
// confirm/commit actions, they never interrupt navigation.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIO
	KindValidation
)

// Error is the error type produced by the dialog core. It wraps the
// underlying os error for IO failures and carries the offending path
// when one is known.
type Error struct {
	kind ErrorKind
	msg  string
	path string
	err  error
}

// NewIOError creates a filesystem error for the given path
func NewIOError(msg, path string, err error) *Error {
	return &Error{kind: KindIO, msg: msg, path: path, err: err}
}

// NewValidationError creates a field-scoped validation error
func NewValidationError(msg string) *Error {
	return &Error{kind: KindValidation, msg: msg}
}

// Error returns the error message
func (e *Error) Error() string {
	switch {
	case e.path != "" && e.err != nil:
		return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
	case e.path != "":
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	default:
		return e.msg
	}
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Path returns the path associated with the error, if any
func (e *Error) Path() string {
	return e.path
}

// Message returns the bare message without path or cause, suitable for
// field-level display next to an input.
func (e *Error) Message() string {
	return e.msg
}

// IsKind reports whether err is a dialog error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind() == kind
	}
	return false
}
