package validation

import (
	"net/mail"
	"strings"
)

// FieldError names one violated field together with its user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Predicate reports whether a field value is acceptable.
type Predicate func(value string) bool

// Rule binds one field value to a predicate and the message emitted when the
// predicate fails. A nil Check defaults to NotEmpty.
type Rule struct {
	Field   string
	Value   string
	Message string
	Check   Predicate
}

// NotEmpty rejects values that are empty or whitespace-only.
func NotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email requires a parseable address ("user@host").
func Email(value string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	return err == nil && addr.Address == strings.TrimSpace(value)
}

// Validate evaluates every rule, in order, and returns all violations.
// Evaluation is deliberately not short-circuited: the caller reports every
// bad field in a single response. An empty result means the input passed.
func Validate(rules []Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		check := r.Check
		if check == nil {
			check = NotEmpty
		}
		if !check(r.Value) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}
