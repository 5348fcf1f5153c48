package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrBadRequest = errors.New("bad request")
)

// Catalog errors
var (
	// ErrGraphValidation marks catalog data that cannot form a curriculum graph
	// (duplicate or dangling course codes, prerequisite cycles, unknown categories).
	ErrGraphValidation = errors.New("curriculum graph validation failed")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCatalogInvalid  = errors.New("catalog definition is invalid")
)

// Schedule errors
var (
	ErrTimeParse     = errors.New("invalid meeting time")
	ErrInvalidSeason = errors.New("invalid semester season")
)

// Student errors
var (
	ErrInvalidStudentID = errors.New("invalid student ID format")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
