package errors

// Upstream-specific helpers for mapping platform API (GitHub) responses to project
// ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"
)

// UpstreamErrorCode maps an upstream HTTP status to an ErrorCode with an ok flag
// !ok means the status carries no classification; caller may fall back to generic handling
func UpstreamErrorCode(status int) (ErrorCode, bool) {
	switch {
	case status == http.StatusNotFound, status == http.StatusGone:
		return ErrorCodeNotFound, true

	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized, true

	// GitHub reports primary rate limiting as 403 with a rate-limit body; either
	// way the caller should back off, so both classify the same
	case status == http.StatusForbidden, status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests, true

	case status == http.StatusUnprocessableEntity:
		return ErrorCodeInvalidArgument, true

	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return ErrorCodeUnavailable, true

	case status >= 500:
		return ErrorCodeUpstream, true
	}
	return ErrorCodeUnknown, false
}

// FromUpstream wraps an upstream API error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromUpstream(err error, status int, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := UpstreamErrorCode(status); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeUpstream, msg)
}

// FromUpstreamf is the formatted variant of FromUpstream
func FromUpstreamf(err error, status int, format string, a ...any) error {
	if err == nil {
		return nil
	}
	if code, ok := UpstreamErrorCode(status); ok {
		return Wrap(err, code, fmt.Sprintf(format, a...))
	}
	return Wrap(err, ErrorCodeUpstream, fmt.Sprintf(format, a...))
}

// IsRateLimited reports whether the error represents an upstream rate limit
func IsRateLimited(err error) bool { return IsCode(err, ErrorCodeTooManyRequests) }

// IsRetryable reports whether an upstream error represents a transient condition
// worth retrying. It handles both classified codes and the generic transport text
// seen on dropped connections (e.g. "connection reset by peer")
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Do not retry local cancellations/timeouts; let the caller decide higher-level retries
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Classified upstream conditions
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	case ErrorCodeNotFound, ErrorCodeUnauthorized, ErrorCodeForbidden,
		ErrorCodeInvalidArgument, ErrorCodeValidation, ErrorCodeJSON:
		return false
	}

	// Fallback: text patterns emitted by net/http on flaky transports
	s := strings.ToLower(Root(err).Error())
	switch {
	case strings.Contains(s, "connection reset by peer"),
		strings.Contains(s, "connection refused"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "tls handshake timeout"),
		strings.Contains(s, "unexpected eof"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "server closed idle connection"):
		return true
	default:
		return false
	}
}
