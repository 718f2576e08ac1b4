package rules

// NonEmpty passes any string of non-zero length. Whitespace counts.
type NonEmpty struct {
	Meta
}

// NewNonEmpty creates a non-empty rule
func NewNonEmpty(priority int, message string) *NonEmpty {
	return &NonEmpty{Meta: NewMeta(priority, message)}
}

// IsValid reports whether value is non-empty
func (r *NonEmpty) IsValid(value string, _ NoData) bool {
	return len(value) > 0
}

// BindNonEmpty creates a non-empty rule and erases it
func BindNonEmpty(priority int, message string) Validator {
	return MustErase[string, NoData](NewNonEmpty(priority, message), NoData{})
}
