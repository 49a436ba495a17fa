package llm

import (
	"errors"
	"testing"
)

func TestClassifyHTTP(t *testing.T) {
	base := errors.New("upstream")

	tests := []struct {
		name       string
		status     int
		message    string
		wantType   string
		overloaded bool
	}{
		{"unauthorized", 401, "bad key", "auth", false},
		{"forbidden", 403, "denied", "auth", false},
		{"rate limited", 429, "too many requests", "quota", false},
		{"service unavailable", 503, "unavailable", "transient", true},
		{"anthropic overloaded", 529, "overloaded_error", "transient", true},
		{"overloaded by message", 500, "The model is overloaded", "transient", true},
		{"internal error", 500, "internal", "transient", false},
		{"bad gateway", 502, "bad gateway", "transient", false},
		{"bad request", 400, "missing field", "invalid", false},
		{"unknown 4xx", 418, "teapot", "provider", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyHTTP("test", tt.status, tt.message, base)

			var (
				auth      *ErrAuth
				quota     *ErrQuota
				transient *ErrTransient
				invalid   *ErrInvalidRequest
				provider  *ErrProvider
			)

			var got string
			switch {
			case errors.As(err, &auth):
				got = "auth"
			case errors.As(err, &quota):
				got = "quota"
			case errors.As(err, &transient):
				got = "transient"
				if transient.Overloaded != tt.overloaded {
					t.Errorf("overloaded = %v, want %v", transient.Overloaded, tt.overloaded)
				}
			case errors.As(err, &invalid):
				got = "invalid"
			case errors.As(err, &provider):
				got = "provider"
			}

			if got != tt.wantType {
				t.Errorf("classified as %q, want %q", got, tt.wantType)
			}
			if !errors.Is(err, base) {
				t.Error("classified error does not wrap the original")
			}
		})
	}
}

func TestClassifyTransport(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	err := classifyTransport("gemini", base)

	var transient *ErrTransient
	if !errors.As(err, &transient) {
		t.Fatalf("expected ErrTransient, got %T", err)
	}
	if transient.Overloaded {
		t.Error("transport failures must not count as overloaded")
	}
	if !errors.Is(err, base) {
		t.Error("transport error does not wrap the original")
	}
}
