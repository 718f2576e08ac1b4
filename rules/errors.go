package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRule is returned when a nil rule is erased.
	ErrNilRule = errors.New("rule cannot be nil")

	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidExpression is returned when a CEL expression does not compile
	// or does not yield a bool.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrExecutorClosed is returned when submitting to a closed executor.
	ErrExecutorClosed = errors.New("executor is closed")
)

// FailureError is the error form of a failed Outcome.
type FailureError struct {
	Message string
	RuleID  string
}

func (e *FailureError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}
