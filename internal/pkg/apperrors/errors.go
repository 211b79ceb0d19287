package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Alumno errors
var (
	ErrAlumnoNotFound = NewResourceNotFoundError("Alumno no encontrado")
	ErrDuplicatePhone = errors.New("phone number already registered")
	ErrDuplicateEmail = NewCustomError(ErrConflict, "El correo ya está registrado")
	ErrWriteConflict  = NewCustomError(ErrConflict, "El registro cambió mientras se guardaba, intenta de nuevo")
)

// Upload errors
var (
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedImage   = errors.New("unsupported image format")
	ErrInvalidPhotoFormat = errors.New("invalid photo dimensions")
)

// DuplicatePhonePrefix is the user-facing lead of the duplicate phone message
const DuplicatePhonePrefix = "Los siguientes números de teléfono ya existen: "

// DuplicatePhoneError lists phone numbers that already belong to someone in the registry
type DuplicatePhoneError struct {
	Numbers []string
}

// NewDuplicatePhoneError creates a DuplicatePhoneError for the given numbers
func NewDuplicatePhoneError(numbers []string) *DuplicatePhoneError {
	return &DuplicatePhoneError{Numbers: numbers}
}

// Error implements error interface
func (e *DuplicatePhoneError) Error() string {
	return DuplicatePhonePrefix + strings.Join(e.Numbers, ", ")
}

// Unwrap implements errors.Unwrap interface
func (e *DuplicatePhoneError) Unwrap() error {
	return ErrDuplicatePhone
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error whose message is shown to the user
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// UserMessage returns the message that is safe to show to the end user, or fallback
func UserMessage(err error, fallback string) string {
	var dup *DuplicatePhoneError
	if errors.As(err, &dup) {
		return dup.Error()
	}
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
