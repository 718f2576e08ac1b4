package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionString(t *testing.T) {
	rule := NewExpression[string](3, "too long")
	const maxThree = `value.size() <= 3`

	assert.True(t, rule.IsValid("abc", maxThree))
	assert.False(t, rule.IsValid("abcd", maxThree))
	assert.True(t, rule.IsValid("", maxThree))
}

func TestExpressionTypedValues(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		rule := NewExpression[int](1, "under age")
		assert.True(t, rule.IsValid(20, `value >= 18`))
		assert.False(t, rule.IsValid(17, `value >= 18`))
	})

	t.Run("Float", func(t *testing.T) {
		rule := NewExpression[float64](1, "too small")
		assert.True(t, rule.IsValid(1500.0, `value > 1000.0`))
	})

	t.Run("Duration", func(t *testing.T) {
		rule := NewExpression[time.Duration](1, "too fast")
		assert.True(t, rule.IsValid(2*time.Second, `value > duration("1s")`))
		assert.False(t, rule.IsValid(time.Millisecond, `value > duration("1s")`))
	})

	t.Run("Dynamic map", func(t *testing.T) {
		rule := NewExpression[map[string]any](1, "not canadian")
		facts := map[string]any{"Citizenship": "CANADA"}
		assert.True(t, rule.IsValid(facts, `value.Citizenship == "CANADA"`))
	})
}

func TestExpressionRuntimeErrorIsInvalid(t *testing.T) {
	rule := NewExpression[int](1, "bad ratio")
	assert.False(t, rule.IsValid(0, `10 / value > 1`))
}

func TestCompileExpressionErrors(t *testing.T) {
	testCases := []struct {
		name   string
		source string
	}{
		{"Syntax error", `value >=`},
		{"Invalid operator", `value === 18`},
		{"Undefined variable", `other > 0`},
		{"Non-boolean result", `value + 1`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompileExpression[int](tc.source)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}

func TestBindExpression(t *testing.T) {
	v, err := BindExpression[string](1, "must be lowercase", `value.matches("^[a-z]*$")`)
	require.NoError(t, err)

	assert.True(t, v.Validate(ValueOf("abc")).Valid())
	assert.False(t, v.Validate(ValueOf("ABC")).Valid())

	_, err = BindExpression[string](1, "broken", `value.size(`)
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestCompileExpressionIsCachedPerType(t *testing.T) {
	first, err := CompileExpression[string](`value.size() > 0`)
	require.NoError(t, err)
	second, err := CompileExpression[string](`value.size() > 0`)
	require.NoError(t, err)
	assert.True(t, first == second, "second compile should hit the cache")

	// Same source, different declared type.
	_, err = CompileExpression[int](`value.size() > 0`)
	assert.ErrorIs(t, err, ErrInvalidExpression)
}
