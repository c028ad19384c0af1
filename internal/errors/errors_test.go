// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid operand"},
			expected: "invalid operand",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %q for flag %s", "abc", "--mod"),
			expected: `invalid value "abc" for flag --mod`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()

	t.Run("Error includes operation and cause", func(t *testing.T) {
		t.Parallel()
		err := CalculationError{Op: "DivRem", Cause: errors.New("division by zero")}
		if got := err.Error(); got != "DivRem: division by zero" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("original error")
		err := CalculationError{Op: "ModPow", Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should match the cause")
		}
	})

	t.Run("errors.Is traverses into context errors", func(t *testing.T) {
		t.Parallel()
		err := CalculationError{Op: "Mul", Cause: context.Canceled}
		if !errors.Is(err, context.Canceled) {
			t.Error("errors.Is should match context.Canceled")
		}
		if !IsContextError(err) {
			t.Error("IsContextError should report true")
		}
	})
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "verify", Limit: 5 * time.Minute}
	want := `operation "verify" timed out after 5m0s`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{Algorithms: [2]string{"karatsuba", "fft"}}
	want := "result mismatch between karatsuba and fft"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should be nil")
		}
	})

	t.Run("wrapped error matches with errors.Is", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("root cause")
		err := WrapError(cause, "while multiplying %d blocks", 512)
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
		want := "while multiplying 512 blocks: root cause"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", WrapError(context.Canceled, "run"), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"timeout type", TimeoutError{Operation: "verify", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"mismatch", MismatchError{Algorithms: [2]string{"schoolbook", "fft"}}, ExitErrorMismatch},
		{"wrapped mismatch", WrapError(MismatchError{Algorithms: [2]string{"a", "b"}}, "verify"), ExitErrorMismatch},
		{"canceled wrapped in calculation", CalculationError{Op: "Mul", Cause: context.Canceled}, ExitErrorCanceled},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
