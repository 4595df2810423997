// Package validation holds the per-entity form validation schemas.
// Rules are pure: callers get back every violated field with its
// message and decide whether to block submission or render inline.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	phonePattern          = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)
	businessNumberPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)
	emailPattern          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// MaxCurrency is the upper bound for every money field.
const MaxCurrency int64 = 999_999_999_999

// FieldError is a single violated rule, scoped to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the full set of violations for one input. It is returned as
// an error so callers can block submission; it never reaches the network.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the offending field paths in order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}

// errs accumulates violations while a schema runs.
type errs struct {
	list Errors
}

func (v *errs) add(field, message string) {
	v.list = append(v.list, FieldError{Field: field, Message: message})
}

func (v *errs) result() error {
	if len(v.list) == 0 {
		return nil
	}
	return v.list
}

func (v *errs) requiredString(field, label, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, fmt.Sprintf("%s is required", label))
		return false
	}
	return true
}

func (v *errs) maxLen(field, label, value string, max int) {
	if len([]rune(value)) > max {
		v.add(field, fmt.Sprintf("%s must be at most %d characters", label, max))
	}
}

func (v *errs) minLen(field, label, value string, min int) {
	if len([]rune(value)) < min {
		v.add(field, fmt.Sprintf("%s must be at least %d characters", label, min))
	}
}

func (v *errs) phone(field, value string) {
	if !phonePattern.MatchString(value) {
		v.add(field, "phone number must match the 010-1234-5678 format")
	}
}

func (v *errs) email(field, value string) {
	if !emailPattern.MatchString(value) {
		v.add(field, "email address is not valid")
	}
}

func (v *errs) businessNumber(field, value string) {
	if !businessNumberPattern.MatchString(value) {
		v.add(field, "business number must match the 123-45-67890 format")
	}
}

func (v *errs) currency(field, label string, value int64) {
	if value < 0 {
		v.add(field, fmt.Sprintf("%s must be 0 or more", label))
	} else if value > MaxCurrency {
		v.add(field, fmt.Sprintf("%s is too large", label))
	}
}

func (v *errs) date(field, label string, value time.Time) bool {
	if value.IsZero() {
		v.add(field, fmt.Sprintf("%s is required", label))
		return false
	}
	return true
}
