package rules

import "fmt"

// Outcome is the result of validating a value: Success, or Failure with an
// optional message.
type Outcome struct {
	failed     bool
	message    string
	hasMessage bool
	ruleID     string
}

// Success returns a passing Outcome
func Success() Outcome {
	return Outcome{}
}

// Failure returns a failing Outcome carrying message
func Failure(message string) Outcome {
	return Outcome{failed: true, message: message, hasMessage: true}
}

// FailureWithoutMessage returns a failing Outcome with no message
func FailureWithoutMessage() Outcome {
	return Outcome{failed: true}
}

func (o Outcome) fromRule(id string) Outcome {
	o.ruleID = id
	return o
}

// Valid reports whether the Outcome is a Success
func (o Outcome) Valid() bool {
	return !o.failed
}

// Message returns the failure message. ok is false for Success and for
// failures without a message.
func (o Outcome) Message() (message string, ok bool) {
	return o.message, o.hasMessage
}

// FailedRule returns the ID of the validator that produced the failure, or
// "" when unknown.
func (o Outcome) FailedRule() string {
	return o.ruleID
}

// Display renders the Outcome for presentation. Success renders as
// validText; a failure renders as its message, or defaultText when it has
// none.
func (o Outcome) Display(validText, defaultText string) string {
	if !o.failed {
		return validText
	}
	if o.hasMessage {
		return o.message
	}
	return defaultText
}

// Err returns nil for Success and a *FailureError otherwise
func (o Outcome) Err() error {
	if !o.failed {
		return nil
	}
	return &FailureError{Message: o.message, RuleID: o.ruleID}
}

func (o Outcome) String() string {
	switch {
	case !o.failed:
		return "success"
	case o.hasMessage:
		return fmt.Sprintf("failure: %s", o.message)
	default:
		return "failure"
	}
}
