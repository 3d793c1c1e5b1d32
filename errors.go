package paperext

import (
	"errors"
	"fmt"
)

// Application error codes. These map cleanly to transport-level concerns
// (HTTP status codes, CLI exit messages) without leaking transport types
// into the domain.
const (
	EINTERNAL      = "internal"       // unexpected internal failure
	EINVALID       = "invalid"        // validation failed on caller input
	EINVALIDFORMAT = "invalid_format" // input document lacks the expected schema
	ENOTFOUND      = "not_found"      // entity does not exist
)

// Error represents an application-specific error with a machine-readable
// code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description safe to return to callers.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("paperext error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the given error, EINTERNAL for non-application
// errors, and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, a generic message for
// non-application errors, and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
