package rules

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/cel-go/cel"
)

// ValueVariable is the name the value is bound to inside expressions.
const ValueVariable = "value"

// costLimit keeps runaway expressions from consuming unbounded CPU
const costLimit = 1000000

var programCache CompiledCache[cel.Program] = NewInMemoryCache[cel.Program](DefaultCacheConfig())

// Expression passes values for which the CEL expression given as rule data
// evaluates to true, for example `value.size() <= 32`.
type Expression[T any] struct {
	Meta
}

// NewExpression creates an expression rule over values of type T
func NewExpression[T any](priority int, message string) *Expression[T] {
	return &Expression[T]{Meta: NewMeta(priority, message)}
}

// IsValid evaluates source against value. Expressions that fail to compile,
// fail to evaluate or yield a non-boolean are treated as not valid.
func (r *Expression[T]) IsValid(value T, source string) bool {
	prog, err := CompileExpression[T](source)
	if err != nil {
		return false
	}

	out, _, err := prog.Eval(map[string]any{ValueVariable: value})
	if err != nil {
		return false
	}

	matched, ok := out.Value().(bool)
	return ok && matched
}

// CompileExpression compiles source for values of type T through the
// shared program cache
func CompileExpression[T any](source string) (cel.Program, error) {
	celType := celTypeOf(typeOf[T]())
	key := celType.String() + "\x00" + source

	prog, err := programCache.GetOrCompile(key, func(string) (cel.Program, error) {
		return compileExpression(celType, source)
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidExpression, source, err)
	}
	return prog, nil
}

func compileExpression(celType *cel.Type, source string) (cel.Program, error) {
	env, err := cel.NewEnv(cel.Variable(ValueVariable, celType))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(source)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression yields %s, want bool", out)
	}

	prog, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}
	return prog, nil
}

// BindExpression creates an expression rule bound to source and erases it.
// A source that does not compile is reported here.
func BindExpression[T any](priority int, message, source string) (Validator, error) {
	if _, err := CompileExpression[T](source); err != nil {
		return nil, err
	}
	return Erase[T, string](NewExpression[T](priority, message), source)
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// celTypeOf maps a Go type to the CEL type declared for the value
// variable. Types without a direct CEL counterpart are declared dyn.
func celTypeOf(t reflect.Type) *cel.Type {
	switch t {
	case timeType:
		return cel.TimestampType
	case durationType:
		return cel.DurationType
	}

	switch t.Kind() {
	case reflect.String:
		return cel.StringType
	case reflect.Bool:
		return cel.BoolType
	case reflect.Int, reflect.Int32, reflect.Int64:
		return cel.IntType
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return cel.UintType
	case reflect.Float32, reflect.Float64:
		return cel.DoubleType
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return cel.BytesType
		}
	}
	return cel.DynType
}
