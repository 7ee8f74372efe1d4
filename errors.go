package docaroo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorCode categorizes an APIError for logging, metrics, and retry
// decisions. The set is closed: every error the client returns carries
// exactly one of these codes.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeInvalidRequest  ErrorCode = "INVALID_REQUEST" // request failed validation, locally or server-side
	ErrCodeAuthentication  ErrorCode = "AUTHENTICATION"  // API key missing, invalid, or not authorized
	ErrCodeRateLimit       ErrorCode = "RATE_LIMIT"      // request quota exceeded (HTTP 429)
	ErrCodeServer          ErrorCode = "SERVER"          // upstream 5xx
	ErrCodeNetwork         ErrorCode = "NETWORK"         // connection failure or timeout
	ErrCodeDeserialization ErrorCode = "DESERIALIZATION" // response body could not be parsed
)

// defaultRetryAfter applies when a 429 response carries no usable hint.
const defaultRetryAfter = 60 * time.Second

// APIError is the single error type returned by the client. The Code field
// tags which variant of the taxonomy occurred; RetryAfter is populated only
// for rate-limit errors, RequestID only when the server supplied one.
type APIError struct {
	// Code tags the error category.
	Code ErrorCode

	// StatusCode is the HTTP status, or 0 when no response was received
	// (validation and network errors).
	StatusCode int

	// Message is a human-readable description, taken from the server's
	// error body when available.
	Message string

	// RequestID identifies the request for support purposes, when the
	// server supplied one.
	RequestID string

	// RetryAfter is the server's backoff hint for rate-limit errors.
	RetryAfter time.Duration

	err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code == ErrCodeRateLimit:
		return fmt.Sprintf("docaroo: rate limit exceeded, retry after %s", e.RetryAfter)
	case e.StatusCode > 0:
		return fmt.Sprintf("docaroo: %s (HTTP %d)", e.Message, e.StatusCode)
	default:
		return "docaroo: " + e.Message
	}
}

// Unwrap returns the underlying transport or decoding error, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// IsRetryable reports whether the operation may succeed if repeated. Exactly
// rate-limit, server, and network errors are retryable.
func (e *APIError) IsRetryable() bool {
	switch e.Code {
	case ErrCodeRateLimit, ErrCodeServer, ErrCodeNetwork:
		return true
	}
	return false
}

// GetRequestID returns the server-assigned request ID, or empty when the
// server did not supply one.
func (e *APIError) GetRequestID() string {
	return e.RequestID
}

// IsRetryable reports whether err represents a retryable condition. It works
// with wrapped errors and returns false for nil and for non-client errors.
//
// The client never retries on its own; pair this with RetryAfter to drive a
// caller-side retry loop:
//
//	if docaroo.IsRetryable(err) {
//	    if delay, ok := docaroo.RetryAfter(err); ok {
//	        time.Sleep(delay)
//	    }
//	    // retry the call
//	}
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}
	return false
}

// RequestID extracts the server request ID from err, or empty when absent.
func RequestID(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.RequestID
	}
	return ""
}

// RetryAfter extracts the rate-limit backoff hint from err. The second
// return value is false when err is not a rate-limit error.
func RetryAfter(err error) (time.Duration, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == ErrCodeRateLimit {
		return apiErr.RetryAfter, true
	}
	return 0, false
}

// AsAPIError extracts an *APIError from the error chain, following the
// errors.As convention.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// invalidRequestf builds the validation error returned before any network
// call is made.
func invalidRequestf(format string, args ...any) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// networkError wraps a transport failure (connection refused, timeout, DNS).
func networkError(err error) *APIError {
	return &APIError{
		Code:    ErrCodeNetwork,
		Message: "request failed: " + err.Error(),
		err:     err,
	}
}

// deserializationError wraps a JSON decoding failure on a success response.
func deserializationError(err error) *APIError {
	return &APIError{
		Code:    ErrCodeDeserialization,
		Message: "failed to parse response: " + err.Error(),
		err:     err,
	}
}

// classifyResponse maps a non-2xx HTTP response to the error taxonomy. The
// body is parsed as an ErrorResponse when possible; otherwise a generic
// message is synthesized from the status code.
func classifyResponse(status int, header http.Header, body []byte) *APIError {
	errResp := ErrorResponse{
		Message: fmt.Sprintf("HTTP %d error", status),
	}
	if len(body) > 0 {
		// Best effort: an unparseable error body keeps the synthesized
		// message.
		var parsed ErrorResponse
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
			errResp = parsed
		}
	}

	apiErr := &APIError{
		StatusCode: status,
		Message:    errResp.Message,
		RequestID:  errResp.RequestID,
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		apiErr.Code = ErrCodeAuthentication
	case status == http.StatusTooManyRequests:
		apiErr.Code = ErrCodeRateLimit
		apiErr.RetryAfter = retryAfterHint(header, errResp.Details)
	case status >= 500:
		apiErr.Code = ErrCodeServer
	default:
		apiErr.Code = ErrCodeInvalidRequest
	}

	return apiErr
}

// retryAfterHint resolves the backoff hint for a 429: the Retry-After header
// wins, then the error body's details.retryAfter, then a fixed default.
func retryAfterHint(header http.Header, details json.RawMessage) time.Duration {
	if d, ok := parseRetryAfter(header.Get("Retry-After")); ok {
		return d
	}
	if len(details) > 0 {
		var hint struct {
			RetryAfter FlexInt `json:"retryAfter"`
		}
		if err := json.Unmarshal(details, &hint); err == nil && hint.RetryAfter > 0 {
			return time.Duration(hint.RetryAfter) * time.Second
		}
	}
	return defaultRetryAfter
}

// parseRetryAfter handles both Retry-After forms: delta-seconds and HTTP-date.
func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
