package booking

import "fmt"

// ValidationError reports invalid input to a booking operation. Its message
// is user-facing and rendered verbatim by the tool layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports an unknown booking reference.
type NotFoundError struct {
	Reference string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking not found with reference: %s", e.Reference)
}

// StateError reports an operation that conflicts with the booking's current
// lifecycle state, such as modifying a cancelled booking.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}
