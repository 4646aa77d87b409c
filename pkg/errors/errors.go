// Package errors defines the coded errors shared by the topogen libraries
// and CLI.
//
// A [Code] classifies a failure for callers that branch on it (the CLI
// picks its exit status with [ExitCode]); the message and the wrapped cause
// carry the detail. Codes survive errors.Join and fmt.Errorf("%w"), so a
// run that fails several tests can still be classified:
//
//	err := errors.Wrap(errors.ErrCodeInfeasible, cause, "test %d", id)
//	if errors.Is(err, errors.ErrCodeInfeasible) {
//	    // parameters can never produce the topology
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // bad flag or argument value
	ErrCodeInvalidRange  Code = "INVALID_RANGE"  // empty or inverted range, index out of range
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unparsable graph, config or manifest
	ErrCodeInvalidSuite  Code = "INVALID_SUITE"  // suite table rejected by validation
	ErrCodeInvalidPath   Code = "INVALID_PATH"   // unusable output or input path

	ErrCodeInfeasible     Code = "INFEASIBLE_PARAMETERS" // topology cannot exist for the drawn parameters
	ErrCodeRetryExhausted Code = "RETRY_EXHAUSTED"       // bounded redraw or restart loop gave up

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeTestNotFound Code = "TEST_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is an error with a code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's tree carries code.
func Is(err error, code Code) bool {
	found := false
	walk(err, func(e *Error) bool {
		found = e.Code == code
		return !found
	})
	return found
}

// GetCode returns the code of the first *Error in err's tree, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err without code prefixes. Joined errors are rendered
// one per line.
func UserMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			if e != nil {
				lines = append(lines, UserMessage(e))
			}
		}
		return strings.Join(lines, "\n")
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode maps err to a process exit status: 0 for nil, 2 when every coded
// error in the tree is an input problem (an INVALID_* or *NOT_FOUND code),
// 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	usage, coded := true, false
	walk(err, func(e *Error) bool {
		coded = true
		switch e.Code {
		case ErrCodeInvalidInput, ErrCodeInvalidRange, ErrCodeInvalidFormat, ErrCodeInvalidSuite,
			ErrCodeInvalidPath, ErrCodeNotFound, ErrCodeTestNotFound:
		default:
			usage = false
		}
		return true
	})
	if coded && usage {
		return 2
	}
	return 1
}

// walk calls fn for every *Error in err's tree, outermost first, until fn
// returns false.
func walk(err error, fn func(*Error) bool) bool {
	switch x := err.(type) {
	case nil:
		return true
	case *Error:
		return fn(x) && walk(x.Cause, fn)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if !walk(e, fn) {
				return false
			}
		}
		return true
	case interface{ Unwrap() error }:
		return walk(x.Unwrap(), fn)
	}
	return true
}
