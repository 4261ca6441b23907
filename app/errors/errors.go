package errors

import "fmt"

// ErrorCode represents different types of application errors
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeStorage      ErrorCode = "STORAGE"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with a code and optional cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFound creates a new "not found" error
func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidInput creates a new "invalid input" error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// NewConflict creates a new "conflict" error (e.g., duplicate login)
func NewConflict(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: message,
	}
}

// NewStorage wraps an I/O or decode fault from the persistent store
func NewStorage(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: message,
		Err:     err,
	}
}

// NewInternal creates a new internal error
func NewInternal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}
