package fetchhttp

import (
	"fmt"
)

// Kind categorizes a failed request so callers can decide whether a retry
// elsewhere makes sense, instead of relying on logged side effects.
type Kind string

const (
	// KindNetwork indicates a transport-level error (connection refused, DNS, etc.)
	KindNetwork Kind = "network"
	// KindTimeout indicates the request exceeded its deadline
	KindTimeout Kind = "timeout"
	// KindRateLimit indicates the provider rejected the request with HTTP 429
	KindRateLimit Kind = "rate_limit"
	// KindServer indicates a provider-side error (HTTP 5xx)
	KindServer Kind = "server"
	// KindClient indicates a request the provider will never accept (HTTP 4xx except 429)
	KindClient Kind = "client"
	// KindDecode indicates the response arrived but its payload could not be parsed
	KindDecode Kind = "decode"
)

// RequestError is the structured outcome of a request that produced no payload.
type RequestError struct {
	Kind       Kind
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is and errors.As against the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

func newNetworkError(cause error) *RequestError {
	return &RequestError{
		Kind:      KindNetwork,
		Retryable: true,
		Message:   "network request failed",
		Cause:     cause,
	}
}

func newTimeoutError(cause error) *RequestError {
	return &RequestError{
		Kind:      KindTimeout,
		Retryable: true,
		Message:   "request timed out",
		Cause:     cause,
	}
}

// NewDecodeError reports a payload that arrived but failed to parse.
// Exposed for adapters that decode the returned bytes themselves.
func NewDecodeError(cause error) *RequestError {
	return &RequestError{
		Kind:      KindDecode,
		Retryable: false,
		Message:   "failed to decode payload",
		Cause:     cause,
	}
}

// classifyStatus maps a non-200 status code into a RequestError.
func classifyStatus(statusCode int) *RequestError {
	switch {
	case statusCode == 429:
		return &RequestError{
			Kind:       KindRateLimit,
			Retryable:  true,
			StatusCode: statusCode,
			Message:    "rate limit exceeded",
		}
	case statusCode >= 500:
		return &RequestError{
			Kind:       KindServer,
			Retryable:  true,
			StatusCode: statusCode,
			Message:    "server returned an error",
		}
	default:
		return &RequestError{
			Kind:       KindClient,
			Retryable:  false,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status code %d", statusCode),
		}
	}
}
