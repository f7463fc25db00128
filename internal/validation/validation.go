// Package validation runs declarative required-field checks before any
// handler logic touches the database. Every failing rule is reported,
// not just the first.
package validation

import "strings"

// FieldError names one failed check in a 400 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule pairs a field name with a predicate and the message returned
// when the predicate fails.
type Rule struct {
	Field   string
	Valid   func() bool
	Message string
}

// Required fails when the value is empty or whitespace-only.
func Required(field, value, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return strings.TrimSpace(value) != "" },
		Message: message,
	}
}

// MinLength fails when the value is shorter than n runes.
func MinLength(field, value string, n int, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return len([]rune(value)) >= n },
		Message: message,
	}
}

// Check evaluates every rule and returns all failures. A nil result
// means the input passed.
func Check(rules ...Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if !r.Valid() {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}
