package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Module specific errors
	ErrInvalidExercise ErrorCode = "INVALID_EXERCISE"
	ErrMalformedModule ErrorCode = "MALFORMED_MODULE"
	ErrInputClosed     ErrorCode = "INPUT_CLOSED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether any DomainError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidExerciseError(exerciseIndex, firstValue int) *DomainError {
	return NewError(ErrInvalidExercise,
		fmt.Sprintf("exercise %d: first element of first unit must be 0, got %d", exerciseIndex, firstValue), nil)
}

func NewMalformedModuleError(fileName string, err error) *DomainError {
	return NewError(ErrMalformedModule, fmt.Sprintf("malformed module file %s", fileName), err)
}

func NewInputClosedError() *DomainError {
	return NewError(ErrInputClosed, "input closed before all fields were entered", nil)
}
