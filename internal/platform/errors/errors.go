// Package errors defines the classified error type shared by the API and CLI.
// Import it as perr to keep it apart from the stdlib package
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for transport mapping and retry decisions
type ErrorCode uint16

// Codes are grouped by origin: local faults, then caller mistakes, then
// upstream verdicts. The numeric values travel in the response envelope
const (
	// ErrorCodeUnknown covers anything that resists classification
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks a recovered handler panic
	ErrorCodePanic

	// ErrorCodeJSON marks a body that failed to decode
	ErrorCodeJSON

	// ErrorCodeValidation marks a decoded body that failed struct validation
	ErrorCodeValidation

	// ErrorCodeInvalidArgument marks bad path or query input
	ErrorCodeInvalidArgument

	// ErrorCodeNotFound marks a missing user or repository
	ErrorCodeNotFound

	// ErrorCodeUnauthorized marks a rejected or missing credential
	ErrorCodeUnauthorized

	// ErrorCodeForbidden marks an upstream policy denial that is not rate limiting
	ErrorCodeForbidden

	// ErrorCodeTooManyRequests marks an exhausted upstream rate limit
	ErrorCodeTooManyRequests

	// ErrorCodeUnavailable marks a transient condition worth retrying
	ErrorCodeUnavailable

	// ErrorCodeUpstream marks any other upstream API failure
	ErrorCodeUpstream
)

// Error pairs a code with a message and an optional wrapped cause
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that keeps orig as the cause
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// JSONErrf returns a decode failure
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a recovered panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// NotFoundf returns a missing user or repository error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns a bad path or query input error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// TooManyRequestsf returns an exhausted rate limit error
func TooManyRequestsf(format string, a ...any) error { return Newf(ErrorCodeTooManyRequests, format, a...) }

// Unavailablef returns a transient upstream error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// As unwraps err and returns (*Error, true) when it is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts the ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// Wire is the JSON form an error takes inside the response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// WireFrom converts any error into a Wire payload.
// A nil err yields the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// HTTP bundles status and wire form in one call for response writers
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// HTTPStatus maps any error to the HTTP status its code implies
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
