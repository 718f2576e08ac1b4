package rules

// Rule is a typed predicate over a value of type T with bound rule data of
// type R. Rules are immutable once built.
type Rule[T, R any] interface {
	Priority() int
	ErrorMessage() string
	IsValid(value T, data R) bool
}

// NoData is the rule data for rules that take no parameter.
type NoData struct{}

// Meta holds the fields every rule carries. Concrete rules embed it.
type Meta struct {
	priority int
	message  string
}

// NewMeta creates rule metadata with the given priority and error message
func NewMeta(priority int, message string) Meta {
	return Meta{priority: priority, message: message}
}

// Priority returns the evaluation order of the rule, lower runs first
func (m Meta) Priority() int { return m.priority }

// ErrorMessage returns the message reported when the rule fails
func (m Meta) ErrorMessage() string { return m.message }

// RuleFunc adapts a plain predicate into a Rule.
type RuleFunc[T, R any] struct {
	Meta
	fn func(T, R) bool
}

// NewRuleFunc creates a rule from a predicate
func NewRuleFunc[T, R any](priority int, message string, fn func(value T, data R) bool) *RuleFunc[T, R] {
	return &RuleFunc[T, R]{Meta: NewMeta(priority, message), fn: fn}
}

// IsValid calls the wrapped predicate. A nil predicate never passes.
func (r *RuleFunc[T, R]) IsValid(value T, data R) bool {
	if r.fn == nil {
		return false
	}
	return r.fn(value, data)
}
