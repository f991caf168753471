// Package fetch implements the resilient fetch orchestrator: a cache-first,
// ordered multi-provider lookup that degrades to curated static data, plus a
// parallel per-source aggregation mode used by the hot-topics widget.
package fetch

import (
	"context"
	"errors"
)

// Provider failure taxonomy. None of these ever reaches the caller of
// FetchWithFallback; they are classified for logs and metrics and the
// orchestrator moves on to the next provider.
var (
	// ErrTransport indicates the request never produced a response
	// (DNS failure, connection refused, TLS error, reset).
	ErrTransport = errors.New("transport failure")

	// ErrTimeout indicates the request exceeded its per-call timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrInvalidResponse indicates a non-2xx status or a payload the
	// provider's parser rejected.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrCircuitOpen indicates the provider's circuit breaker rejected the call.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrExhausted indicates every provider failed. The orchestrator always
	// answers it with the fallback supplier, so it is only observed in logs.
	ErrExhausted = errors.New("all providers exhausted")

	// ErrInvalidURL indicates the URL format is invalid or uses an unsupported scheme.
	// Only http:// and https:// schemes are supported.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")
)

// Failure class labels used in logs and metrics.
const (
	ClassSuccess         = "success"
	ClassTimeout         = "timeout"
	ClassTransport       = "transport"
	ClassInvalidResponse = "invalid_response"
	ClassCircuitOpen     = "circuit_open"
	ClassCanceled        = "canceled"
)

// Classify maps a provider error to its failure class.
// Unknown errors are treated as transport failures.
func Classify(err error) string {
	switch {
	case err == nil:
		return ClassSuccess
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case errors.Is(err, context.Canceled):
		return ClassCanceled
	case errors.Is(err, ErrCircuitOpen):
		return ClassCircuitOpen
	case errors.Is(err, ErrInvalidResponse), errors.Is(err, ErrBodyTooLarge), errors.Is(err, ErrInvalidURL):
		return ClassInvalidResponse
	default:
		return ClassTransport
	}
}
