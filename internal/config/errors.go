package config

import "fmt"

// ValidationError reports a configuration key holding an unusable value.
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Key, e.Message)
}

func NewValidationError(key, message string) *ValidationError {
	return &ValidationError{Key: key, Message: message}
}
