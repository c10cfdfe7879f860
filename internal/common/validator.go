package common

import "fmt"

// ValidationError reports the first check that failed. Later failures
// are deliberately not collected: clients receive a single field-level
// message per request.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

type Validator struct {
	failed  bool
	field   string
	message string
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Valid() bool {
	return !v.failed
}

// Check records a failure for field unless ok is true. Only the first
// failure is kept; checks therefore run in declaration order.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok && !v.failed {
		v.failed = true
		v.field = field
		v.message = message
	}
}

func (v *Validator) CheckStringLength(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

func (v *Validator) ValidationError() error {
	return ValidationError{Field: v.field, Message: v.message}
}
