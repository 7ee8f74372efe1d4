package docaroo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

// TestClassifyResponse covers the status-to-taxonomy mapping.
func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  ErrorCode
		retryable bool
	}{
		{"bad request", 400, `{"error":"bad_request","message":"invalid NPI format"}`, ErrCodeInvalidRequest, false},
		{"unprocessable", 422, `{"error":"validation_failed","message":"conditionCode is required"}`, ErrCodeInvalidRequest, false},
		{"not found", 404, ``, ErrCodeInvalidRequest, false},
		{"unauthorized", 401, `{"error":"unauthorized","message":"invalid API key"}`, ErrCodeAuthentication, false},
		{"forbidden", 403, `{"error":"forbidden","message":"key not allowed"}`, ErrCodeAuthentication, false},
		{"rate limited", 429, `{"error":"rate_limit_exceeded","message":"slow down"}`, ErrCodeRateLimit, true},
		{"internal error", 500, `{"error":"internal","message":"boom"}`, ErrCodeServer, true},
		{"bad gateway, no body", 502, ``, ErrCodeServer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classifyResponse(tt.status, http.Header{}, []byte(tt.body))
			if apiErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, apiErr.Code)
			}
			if apiErr.IsRetryable() != tt.retryable {
				t.Errorf("expected retryable=%v", tt.retryable)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
		})
	}
}

// TestClassifyResponse_Messages verifies server messages are carried through
// and missing bodies get a synthesized message.
func TestClassifyResponse_Messages(t *testing.T) {
	apiErr := classifyResponse(400, http.Header{}, []byte(`{"error":"bad_request","message":"invalid NPI format","requestId":"req_9"}`))
	if apiErr.Message != "invalid NPI format" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
	if apiErr.RequestID != "req_9" {
		t.Errorf("expected request id req_9, got %q", apiErr.RequestID)
	}

	apiErr = classifyResponse(503, http.Header{}, nil)
	if apiErr.Message != "HTTP 503 error" {
		t.Errorf("expected synthesized message, got %q", apiErr.Message)
	}

	// An unparseable error body also falls back to the synthesized message.
	apiErr = classifyResponse(500, http.Header{}, []byte(`<html>oops</html>`))
	if apiErr.Message != "HTTP 500 error" {
		t.Errorf("expected synthesized message, got %q", apiErr.Message)
	}
}

// TestRetryAfterHint verifies the header, details, default precedence.
func TestRetryAfterHint(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "5")
	if d := retryAfterHint(header, nil); d != 5*time.Second {
		t.Errorf("header hint: expected 5s, got %s", d)
	}

	// Header wins over details.
	if d := retryAfterHint(header, []byte(`{"retryAfter": 120}`)); d != 5*time.Second {
		t.Errorf("header precedence: expected 5s, got %s", d)
	}

	// Details used when no header.
	if d := retryAfterHint(http.Header{}, []byte(`{"retryAfter": 120}`)); d != 120*time.Second {
		t.Errorf("details hint: expected 120s, got %s", d)
	}

	// Details also accepts the string form.
	if d := retryAfterHint(http.Header{}, []byte(`{"retryAfter": "30"}`)); d != 30*time.Second {
		t.Errorf("string details hint: expected 30s, got %s", d)
	}

	// Nothing usable falls back to the default.
	if d := retryAfterHint(http.Header{}, nil); d != defaultRetryAfter {
		t.Errorf("default hint: expected %s, got %s", defaultRetryAfter, d)
	}
}

// TestParseRetryAfter covers both Retry-After forms.
func TestParseRetryAfter(t *testing.T) {
	if d, ok := parseRetryAfter("10"); !ok || d != 10*time.Second {
		t.Errorf("delta-seconds: expected 10s/true, got %s/%v", d, ok)
	}

	// HTTP-date in the future yields a positive duration.
	future := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	if d, ok := parseRetryAfter(future); !ok || d <= 0 || d > 30*time.Second {
		t.Errorf("http-date: expected ~30s/true, got %s/%v", d, ok)
	}

	// HTTP-date in the past clamps to zero.
	past := time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat)
	if d, ok := parseRetryAfter(past); !ok || d != 0 {
		t.Errorf("past http-date: expected 0/true, got %s/%v", d, ok)
	}

	if _, ok := parseRetryAfter(""); ok {
		t.Error("empty value must not parse")
	}
	if _, ok := parseRetryAfter("soon"); ok {
		t.Error("garbage value must not parse")
	}
	if _, ok := parseRetryAfter("-5"); ok {
		t.Error("negative seconds must not parse")
	}
}

// TestErrorHelpers verifies the package-level helpers traverse wrapped
// errors.
func TestErrorHelpers(t *testing.T) {
	rateLimited := &APIError{
		Code:       ErrCodeRateLimit,
		StatusCode: 429,
		Message:    "slow down",
		RequestID:  "req_rl",
		RetryAfter: 7 * time.Second,
	}
	wrapped := fmt.Errorf("fetching rates: %w", rateLimited)

	if !IsRetryable(wrapped) {
		t.Error("expected wrapped rate-limit error to be retryable")
	}
	if RequestID(wrapped) != "req_rl" {
		t.Errorf("expected request id req_rl, got %q", RequestID(wrapped))
	}
	if d, ok := RetryAfter(wrapped); !ok || d != 7*time.Second {
		t.Errorf("expected 7s/true, got %s/%v", d, ok)
	}
	if apiErr, ok := AsAPIError(wrapped); !ok || apiErr != rateLimited {
		t.Error("AsAPIError failed on wrapped error")
	}

	// Non-client errors.
	plain := errors.New("something else")
	if IsRetryable(plain) {
		t.Error("plain errors are not retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil is not retryable")
	}
	if RequestID(plain) != "" {
		t.Error("plain errors carry no request id")
	}
	if _, ok := RetryAfter(plain); ok {
		t.Error("plain errors carry no retry hint")
	}

	// RetryAfter only applies to rate-limit errors.
	serverErr := &APIError{Code: ErrCodeServer, StatusCode: 500}
	if _, ok := RetryAfter(serverErr); ok {
		t.Error("server errors carry no retry hint")
	}
}

// TestAPIErrorMessages spot-checks the rendered error strings.
func TestAPIErrorMessages(t *testing.T) {
	rateLimited := &APIError{Code: ErrCodeRateLimit, StatusCode: 429, RetryAfter: 5 * time.Second}
	if !strings.Contains(rateLimited.Error(), "retry after 5s") {
		t.Errorf("unexpected rate limit message: %s", rateLimited.Error())
	}

	auth := &APIError{Code: ErrCodeAuthentication, StatusCode: 401, Message: "invalid API key"}
	if !strings.Contains(auth.Error(), "HTTP 401") || !strings.Contains(auth.Error(), "invalid API key") {
		t.Errorf("unexpected auth message: %s", auth.Error())
	}

	validation := invalidRequestf("at least one NPI must be provided")
	if strings.Contains(validation.Error(), "HTTP") {
		t.Errorf("validation errors have no HTTP status: %s", validation.Error())
	}
}
