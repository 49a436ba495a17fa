package llm

import (
	"net/http"
	"strings"
)

// classifyHTTP maps an HTTP status plus vendor message into the shared
// error taxonomy. Adapters extract the status from their SDK error type and
// delegate here so all vendors classify identically.
func classifyHTTP(provider string, status int, message string, err error) error {
	overloaded := status == http.StatusServiceUnavailable ||
		status == 529 || // Anthropic "overloaded_error"
		strings.Contains(strings.ToLower(message), "overloaded")

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ErrAuth{Provider: provider, Err: err}
	case status == http.StatusTooManyRequests:
		return &ErrQuota{Provider: provider, Err: err}
	case overloaded:
		return &ErrTransient{Provider: provider, Overloaded: true, Err: err}
	case status >= 500:
		return &ErrTransient{Provider: provider, Err: err}
	case status == http.StatusBadRequest:
		return &ErrInvalidRequest{Reason: "provider rejected request", Err: err}
	default:
		return &ErrProvider{Provider: provider, Err: err}
	}
}

// classifyTransport handles errors with no HTTP status at all: DNS
// failures, connection resets, TLS problems. All are treated as transient.
func classifyTransport(provider string, err error) error {
	return &ErrTransient{Provider: provider, Err: err}
}
