// Package validate implements the numeric input contract for form fields:
// required money fields take whole dollars only, optional fields fall back
// to zero through the lenient-parse policy in the token package.
package validate

import (
	"regexp"
	"strconv"
)

var (
	integerRe = regexp.MustCompile(`^-?\d+$`)
	letterRe  = regexp.MustCompile(`[a-zA-Z]`)
)

// IsWholeNumber reports whether value is a valid integer string. Empty input
// and a lone minus sign are allowed so validation can run while the user is
// still typing.
func IsWholeNumber(value string) bool {
	if value == "" || value == "-" {
		return true
	}
	return integerRe.MatchString(value)
}

// WholeNumberError returns the user-facing message for an invalid integer
// field, or "" when the input is acceptable.
func WholeNumberError(value string) string {
	if IsWholeNumber(value) {
		return ""
	}
	if letterRe.MatchString(value) {
		return "Letters are not allowed"
	}
	if containsDot(value) {
		return "Whole numbers only (no decimals)"
	}
	return "Please enter a valid whole number"
}

func containsDot(value string) bool {
	for _, r := range value {
		if r == '.' {
			return true
		}
	}
	return false
}

// ParseAmount parses a required non-negative whole-dollar field. Unlike the
// lenient policy, bad input here fails loudly.
func ParseAmount(value string) (float64, error) {
	if msg := WholeNumberError(value); msg != "" {
		return 0, &FieldError{Message: msg}
	}
	if value == "" || value == "-" {
		return 0, &FieldError{Message: "Please enter a valid whole number"}
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &FieldError{Message: "Please enter a valid whole number"}
	}
	if n < 0 {
		return 0, &FieldError{Message: "Amount cannot be negative"}
	}
	return n, nil
}

// FieldError carries the user-facing validation message for one field.
type FieldError struct {
	Message string
}

func (e *FieldError) Error() string { return e.Message }
