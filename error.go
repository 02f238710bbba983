package vidmeta

import (
	"errors"
	"fmt"
)

// Application error codes. Routing, boundary, literal, and field failures
// each carry their own code so callers can tell "nothing to extract" from
// "extraction degraded" from "hard failure".
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ENOVARIANT = "no_variant_match"
	EBOUNDARY  = "boundary_not_found"
	EPARSE     = "literal_parse_error"
	EMISSING   = "missing_required_field"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("vidmeta error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
