package scheduler

import "errors"

type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindOutOfHours ErrorKind = "OUT_OF_HOURS"
	KindConflict   ErrorKind = "CONFLICT"
	KindInternal   ErrorKind = "INTERNAL"
)

// Error is the outcome of a failed engine operation. CONFLICT is an expected
// result under concurrent booking, not a system failure.
type Error struct {
	Kind    ErrorKind   `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "persistence failure", Details: err.Error()}
}

// AsError unwraps err into a *Error, or nil if err is not one.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e := AsError(err)
	return e != nil && e.Kind == kind
}
