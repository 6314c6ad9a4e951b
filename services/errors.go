package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// ValidationError reports a missing or malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

// ProviderError is a non-success answer from the messaging provider.
type ProviderError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("messaging provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("messaging provider error %d: %s", e.Code, e.Message)
}
