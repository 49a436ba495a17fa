package llm

import "fmt"

// ErrInvalidRequest indicates the request itself was rejected (missing
// field, bad parameter). Never retried.
type ErrInvalidRequest struct {
	Reason string
	Err    error
}

func (e *ErrInvalidRequest) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid request: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

func (e *ErrInvalidRequest) Unwrap() error { return e.Err }

// ErrAuth indicates the provider rejected the API key (401/403).
// Fatal; switching models cannot recover it.
type ErrAuth struct {
	Provider string
	Err      error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("%s authentication failed: %v", e.Provider, e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrQuota indicates the account exhausted its quota or rate allowance
// (429). Fatal for the current request; retrying another model on the same
// account does not help.
type ErrQuota struct {
	Provider string
	Err      error
}

func (e *ErrQuota) Error() string {
	return fmt.Sprintf("%s quota exceeded: %v", e.Provider, e.Err)
}

func (e *ErrQuota) Unwrap() error { return e.Err }

// ErrTransient indicates a temporary provider condition (5xx, transport
// failure, per-attempt timeout). Overloaded marks the vendor "model
// overloaded" sub-case, which drives model fallback.
type ErrTransient struct {
	Provider   string
	Overloaded bool
	Err        error
}

func (e *ErrTransient) Error() string {
	if e.Overloaded {
		return fmt.Sprintf("%s overloaded: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s temporarily unavailable: %v", e.Provider, e.Err)
}

func (e *ErrTransient) Unwrap() error { return e.Err }

// ErrProvider wraps a vendor error that fits no other class. Treated as
// fatal: an unknown failure mode is not assumed to clear on retry.
type ErrProvider struct {
	Provider string
	Err      error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ErrProvider) Unwrap() error { return e.Err }
