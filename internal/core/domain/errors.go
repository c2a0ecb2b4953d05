package domain

import "errors"

var (
	ErrTaskNotFound           = errors.New("Task not found")
	ErrUserNotFound           = errors.New("User not found")
	ErrEmailAlreadyRegistered = errors.New("User with this email already exists")
)

// ValidationError is raised synchronously by entity construction and
// mutation when an input breaks an invariant.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrUserNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyRegistered)
}
