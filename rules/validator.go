package rules

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Validator is a rule with its value and data types erased, so rules of
// different types can be stored and evaluated together.
type Validator interface {
	ID() string
	Priority() int
	ErrorMessage() string
	Validate(value Value) Outcome
}

// erased pairs a concrete rule with its bound data. Immutable after Erase.
type erased struct {
	id        string
	priority  int
	message   string
	valueType reflect.Type
	check     func(Value) bool
}

// Erase binds data to rule and returns it as a Validator. Priority and
// error message are copied from the rule at this point.
func Erase[T, R any](rule Rule[T, R], data R) (Validator, error) {
	if rule == nil {
		return nil, ErrNilRule
	}
	if rv := reflect.ValueOf(rule); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrNilRule
	}

	return &erased{
		id:        uuid.NewString(),
		priority:  rule.Priority(),
		message:   rule.ErrorMessage(),
		valueType: typeOf[T](),
		check: func(v Value) bool {
			typed, ok := As[T](v)
			if !ok {
				return false
			}
			return rule.IsValid(typed, data)
		},
	}, nil
}

// MustErase is like Erase but panics on error. Intended for static rule
// sets built at program start.
func MustErase[T, R any](rule Rule[T, R], data R) Validator {
	v, err := Erase(rule, data)
	if err != nil {
		panic(fmt.Sprintf("rules: erase: %v", err))
	}
	return v
}

func (e *erased) ID() string { return e.id }

func (e *erased) Priority() int { return e.priority }

func (e *erased) ErrorMessage() string { return e.message }

// Validate runs the wrapped rule. A value of the wrong type fails with the
// rule's own message.
func (e *erased) Validate(value Value) Outcome {
	if e.check(value) {
		return Success()
	}
	return e.failure()
}

func (e *erased) failure() Outcome {
	if e.message == "" {
		return FailureWithoutMessage().fromRule(e.id)
	}
	return Failure(e.message).fromRule(e.id)
}

func (e *erased) String() string {
	return fmt.Sprintf("rule %s (priority %d, %s)", e.id, e.priority, e.valueType)
}
