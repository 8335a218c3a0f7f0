package planner

import "fmt"

// ValidationError reports malformed budget input. It is the only error that
// aborts a plan request; upstream and data-shape problems degrade instead.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
