// Package clients provides the HTTP client used to reach quote providers.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// These are distinct from domain errors - the ACL adapters translate them
// into domain.FetchError values.
var (
	// ErrTransport is returned when no response was received: DNS, connect,
	// TLS, timeout or cancellation. The original error is wrapped for context.
	ErrTransport = errors.New("transport error")
)
