package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errBase = errors.New("k > n")

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidInput, "bad seed %q", "x"), `INVALID_INPUT: bad seed "x"`},
		{Wrap(ErrCodeInfeasible, errBase, "test %d", 2), "INFEASIBLE_PARAMETERS: test 2: k > n"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapUnwraps(t *testing.T) {
	err := Wrap(ErrCodeInfeasible, errBase, "test 2")
	if !errors.Is(err, errBase) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != errBase {
		t.Error("Unwrap does not return the cause")
	}
}

func TestIs(t *testing.T) {
	joined := errors.Join(
		Wrap(ErrCodeInfeasible, errBase, "test 4"),
		fmt.Errorf("test 9: %w", New(ErrCodeRetryExhausted, "64 redraws")),
	)
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", New(ErrCodeInvalidRange, "r"), ErrCodeInvalidRange, true},
		{"other code", New(ErrCodeInvalidRange, "r"), ErrCodeRetryExhausted, false},
		{"outer of nested", Wrap(ErrCodeRetryExhausted, New(ErrCodeInvalidInput, "in"), "out"), ErrCodeRetryExhausted, true},
		{"inner of nested", Wrap(ErrCodeRetryExhausted, New(ErrCodeInvalidInput, "in"), "out"), ErrCodeInvalidInput, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(ErrCodeNotFound, "m")), ErrCodeNotFound, true},
		{"joined first", joined, ErrCodeInfeasible, true},
		{"joined second", joined, ErrCodeRetryExhausted, true},
		{"joined absent", joined, ErrCodeInternal, false},
		{"plain", errBase, ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(fmt.Errorf("x: %w", New(ErrCodeTestNotFound, "t"))); got != ErrCodeTestNotFound {
		t.Errorf("GetCode = %q, want TEST_NOT_FOUND", got)
	}
	if got := GetCode(errBase); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "no seed"), "no seed"},
		{"with cause", Wrap(ErrCodeInfeasible, errBase, "test 2"), "test 2: k > n"},
		{"nested codes", Wrap(ErrCodeInvalidSuite, New(ErrCodeInvalidRange, "nodes [5, 3]"), "load suite"), "load suite: nodes [5, 3]"},
		{"joined", errors.Join(New(ErrCodeInfeasible, "test 4"), New(ErrCodeRetryExhausted, "test 9")), "test 4\ntest 9"},
		{"plain", errBase, "k > n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errBase, 1},
		{"input", New(ErrCodeInvalidInput, "no seed"), 2},
		{"unknown test", fmt.Errorf("select: %w", New(ErrCodeTestNotFound, "99")), 2},
		{"generation", Wrap(ErrCodeRetryExhausted, errBase, "test 10"), 1},
		{"all usage joined", errors.Join(New(ErrCodeInvalidPath, "a"), New(ErrCodeInvalidSuite, "b")), 2},
		{"mixed joined", errors.Join(New(ErrCodeInvalidPath, "a"), New(ErrCodeInternal, "b")), 1},
		{"usage over internal cause", Wrap(ErrCodeInvalidFormat, New(ErrCodeInternal, "io"), "manifest"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
