package rules

import (
	"fmt"
	"regexp"
)

var patternCache CompiledCache[*regexp.Regexp] = NewInMemoryCache[*regexp.Regexp](DefaultCacheConfig())

// Pattern passes strings containing at least one match of the regular
// expression given as rule data.
type Pattern struct {
	Meta
}

// NewPattern creates a pattern rule
func NewPattern(priority int, message string) *Pattern {
	return &Pattern{Meta: NewMeta(priority, message)}
}

// IsValid reports whether value matches pattern. Patterns are compiled once
// and cached; a pattern that does not compile never matches. Use
// CompilePattern or BindPattern to reject bad patterns up front.
func (r *Pattern) IsValid(value string, pattern string) bool {
	re, err := CompilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// CompilePattern compiles pattern through the shared cache
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := patternCache.GetOrCompile(pattern, regexp.Compile)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// BindPattern creates a pattern rule bound to pattern and erases it. A
// pattern that does not compile is reported here, never at evaluation.
func BindPattern(priority int, message, pattern string) (Validator, error) {
	if _, err := CompilePattern(pattern); err != nil {
		return nil, err
	}
	return Erase[string, string](NewPattern(priority, message), pattern)
}
