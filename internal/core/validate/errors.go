package validate

import "fmt"

// ValidationError is returned when an input fails a validation rule.
// Rule names the violated rule so callers can distinguish failures
// without parsing the message.
type ValidationError struct {
	Rule   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Reason)
}

func errf(rule, format string, args ...interface{}) error {
	return &ValidationError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}
