package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("bad value %d for %s", 7, "count")
	if err.Error() != "bad value 7 for count" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As must recognize a ConfigError.")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("Wrapping nil must return nil.")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "generating %s", "primes")
	if !errors.Is(wrapped, base) {
		t.Error("Wrapped error must unwrap to its cause.")
	}
	if wrapped.Error() != "generating primes: boom" {
		t.Errorf("Unexpected message: %q", wrapped.Error())
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	if !IsContextError(context.Canceled) || !IsContextError(context.DeadlineExceeded) {
		t.Error("Context errors must be recognized.")
	}
	if !IsContextError(fmt.Errorf("wrapped: %w", context.Canceled)) {
		t.Error("Wrapped context errors must be recognized.")
	}
	if IsContextError(errors.New("other")) {
		t.Error("Unrelated errors must not be recognized.")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", fmt.Errorf("run: %w", context.Canceled), ExitErrorCanceled},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
